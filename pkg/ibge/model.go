package ibge

// Municipality is an entry of the localidades API.
type Municipality struct {
	ID           int64  `json:"id"`
	Nome         string `json:"nome"`
	Microrregiao *struct {
		Mesorregiao struct {
			Nome string `json:"nome"`
		} `json:"mesorregiao"`
	} `json:"microrregiao"`
}

func (m Municipality) Mesoregion() string {
	if m.Microrregiao == nil {
		return ""
	}
	return m.Microrregiao.Mesorregiao.Nome
}

// Indicator identifies one variable of an IBGE aggregate.
type Indicator struct {
	Aggregate int
	Period    string
	Variable  int
}

var (
	Population          = Indicator{Aggregate: 4709, Period: "2022", Variable: 93}
	FormalJobs          = Indicator{Aggregate: 6449, Period: "2021", Variable: 707}
	AverageFormalSalary = Indicator{Aggregate: 6449, Period: "2021", Variable: 1606}
	AverageIncome       = Indicator{Aggregate: 10295, Period: "2022", Variable: 13431}
)

type aggregateResponse []struct {
	Resultados []struct {
		Series []struct {
			Serie map[string]string `json:"serie"`
		} `json:"series"`
	} `json:"resultados"`
}

// Stats are the demographic indicators of one municipality.
type Stats struct {
	Population          int64   `json:"population"`
	FormalJobs          int64   `json:"formal_jobs"`
	AverageFormalSalary float64 `json:"average_formal_salary"`
	AverageIncome       float64 `json:"average_income"`
}
