package linhas

type NovaLinha struct {
	ProdutoID      *uint  `json:"productId"`
	Numero         string `json:"numero" validate:"required,max=30"`
	OperadoraAtual string `json:"operadoraAtual" validate:"max=100"`
	Svas           []uint `json:"svas"`
	Observacoes    string `json:"observacoes"`
}

// AlteracaoLinha é parcial: campos nulos não são alterados.
type AlteracaoLinha struct {
	Numero         *string `json:"numero" validate:"omitempty,max=30"`
	OperadoraAtual *string `json:"operadoraAtual" validate:"omitempty,max=100"`
	Svas           *[]uint `json:"svas"`
	Observacoes    *string `json:"observacoes"`
	Status         *string `json:"status" validate:"omitempty,max=30"` // só admin
}

type SelecaoSva struct {
	SvaID uint `json:"svaId" validate:"required"`
}

type Resumo struct {
	TotalLinhasContratadas int                 `json:"totalLinhasContratadas"`
	TotalLinhasPreenchidas int                 `json:"totalLinhasPreenchidas"`
	LinhasRestantes        int                 `json:"linhasRestantes"`
	Progresso              int                 `json:"progresso"`
	ProdutosDisponiveis    []ProdutoDisponivel `json:"produtosDisponiveis"`
	SvasDisponiveis        []SaldoSva          `json:"svasDisponiveis"`
	Linhas                 []Linha             `json:"linhas"`
	Slots                  []Slot              `json:"slots"`
}
