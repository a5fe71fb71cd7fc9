package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoldName(t *testing.T) {
	assert.Equal(t, "sao joao del-rei", FoldName("São João del-Rei"))
	assert.Equal(t, "uberlandia", FoldName(" Uberlândia "))
	assert.Equal(t, "montes claros", FoldName("MONTES CLAROS"))
}

func TestAlternateNames(t *testing.T) {
	assert.Equal(t, []string{"uberlândia", "uberlandia"}, AlternateNames("Uberlândia"))
	assert.Equal(t, []string{"juiz de fora"}, AlternateNames("Juiz de Fora"))
	assert.Equal(t,
		[]string{"pingo-d'água", "pingo-d'agua", "pingo d'água", "pingo d'agua", "pingo-dagua"},
		AlternateNames("Pingo-d'Água"))
	assert.Empty(t, AlternateNames("  "))
}
