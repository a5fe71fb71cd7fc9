package domain

import "time"

type PhaseKey string

const (
	PhaseViability            PhaseKey = "viability"
	PhaseOperationalPrep      PhaseKey = "operational_prep"
	PhaseDriverAcquisition    PhaseKey = "driver_acquisition"
	PhaseMarketingLaunch      PhaseKey = "marketing_launch"
	PhasePassengerAcquisition PhaseKey = "passenger_acquisition"
	PhasePostLaunch           PhaseKey = "post_launch"
)

// PhaseDefinition describes one entry of the fixed expansion catalog.
type PhaseDefinition struct {
	Key  PhaseKey
	Name string
	// GatesExpansion marks the phases that must be complete before a city enters Expansion.
	GatesExpansion bool
	DurationDays   int
	StarterActions []string
}

// PhaseCatalog is ordered; template plans lay phases out back to back in this order.
var PhaseCatalog = []PhaseDefinition{
	{
		Key:            PhaseViability,
		Name:           "Análise de Viabilidade",
		GatesExpansion: true,
		DurationDays:   30,
		StarterActions: []string{
			"Levantar dados demográficos e econômicos da cidade",
			"Mapear concorrentes e preços praticados",
			"Validar projeção de receita com a diretoria",
		},
	},
	{
		Key:            PhaseOperationalPrep,
		Name:           "Preparação Operacional",
		GatesExpansion: true,
		DurationDays:   30,
		StarterActions: []string{
			"Verificar regulamentação municipal de transporte por aplicativo",
			"Definir área de cobertura inicial",
			"Configurar tarifas e zonas no sistema",
		},
	},
	{
		Key:          PhaseDriverAcquisition,
		Name:         "Aquisição de Motoristas",
		DurationDays: 45,
		StarterActions: []string{
			"Publicar campanha de cadastro de motoristas",
			"Realizar onboarding dos primeiros motoristas",
		},
	},
	{
		Key:          PhaseMarketingLaunch,
		Name:         "Lançamento de Marketing",
		DurationDays: 30,
		StarterActions: []string{
			"Planejar evento ou ação de lançamento",
			"Contratar mídia local e parcerias",
		},
	},
	{
		Key:          PhasePassengerAcquisition,
		Name:         "Aquisição de Passageiros",
		DurationDays: 60,
		StarterActions: []string{
			"Distribuir cupons de primeira corrida",
			"Acompanhar taxa de conversão de cadastros",
		},
	},
	{
		Key:          PhasePostLaunch,
		Name:         "Otimização Pós-Lançamento",
		DurationDays: 90,
		StarterActions: []string{
			"Revisar tempo médio de espera",
			"Ajustar incentivos de motoristas por horário",
		},
	},
}

func LookupPhase(key PhaseKey) (PhaseDefinition, bool) {
	for _, def := range PhaseCatalog {
		if def.Key == key {
			return def, true
		}
	}
	return PhaseDefinition{}, false
}

// PhaseTemplate lays out the canonical phases starting at anchor. newID supplies action identifiers.
func PhaseTemplate(anchor time.Time, newID func() string) []Phase {
	phases := make([]Phase, 0, len(PhaseCatalog))
	start := anchor
	for _, def := range PhaseCatalog {
		phaseStart := start
		estimated := phaseStart.AddDate(0, 0, def.DurationDays)

		actions := make([]Action, 0, len(def.StarterActions))
		for _, desc := range def.StarterActions {
			actions = append(actions, Action{
				ID:          newID(),
				Description: desc,
				CreatedAt:   anchor,
			})
		}

		phases = append(phases, Phase{
			Key:                     def.Key,
			Name:                    def.Name,
			StartDate:               &phaseStart,
			EstimatedCompletionDate: &estimated,
			Actions:                 actions,
		})
		start = estimated
	}
	return phases
}
