package domain

import "errors"

var (
	ErrNotFound          = errors.New("registro não encontrado")
	ErrCityNotFound      = errors.New("cidade não encontrada")
	ErrPlanNotFound      = errors.New("plano não encontrado")
	ErrPlanAlreadyActive = errors.New("cidade já possui um plano ativo")
	ErrPhaseNotFound     = errors.New("fase não encontrada")
	ErrActionNotFound    = errors.New("ação não encontrada")
	ErrBlockNotFound     = errors.New("bloco não encontrado")
	ErrDuplicateBlock    = errors.New("bloco repetido")
	ErrCityInTwoBlocks   = errors.New("cidade pertence a mais de um bloco")
	ErrInvalidMonthKey   = errors.New("mês inválido, use o formato YYYY-MM")
	ErrInvalidStatus     = errors.New("status inválido")
)
