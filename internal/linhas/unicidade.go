package linhas

import "github.com/KromaTelecom/api-pedidos/internal/pedido"

// Vinculo liga uma linha com o número procurado à etapa do seu pedido.
type Vinculo struct {
	LinhaID  uint
	PedidoID uint
	Etapa    string
}

// NumeroEmUso indica se algum vínculo (fora a linha excluída) pertence a pedido ainda aberto.
// Pedidos cancelados, reprovados, concluídos ou encerrados liberam o número.
func NumeroEmUso(vinculos []Vinculo, excluirLinhaID uint) bool {
	for _, v := range vinculos {
		if excluirLinhaID != 0 && v.LinhaID == excluirLinhaID {
			continue
		}
		if !pedido.EtapaTerminal(v.Etapa) {
			return true
		}
	}
	return false
}
