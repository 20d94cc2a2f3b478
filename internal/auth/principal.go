package auth

import "context"

type Papel string

const (
	PapelCliente Papel = "customer"
	PapelAdmin   Papel = "admin"
)

// Principal é quem está agindo na requisição. ClienteID só vale para PapelCliente.
type Principal struct {
	UsuarioID uint
	Papel     Papel
	ClienteID uint
}

func (p Principal) IsAdmin() bool { return p.Papel == PapelAdmin }

// PodeAcessar diz se o principal pode agir sobre um recurso do cliente informado.
func (p Principal) PodeAcessar(clienteID uint) bool {
	return p.IsAdmin() || (p.ClienteID != 0 && p.ClienteID == clienteID)
}

type ctxKey string

const ctxPrincipal ctxKey = "principal"

func ComPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, ctxPrincipal, p)
}

func PrincipalDe(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(ctxPrincipal).(Principal)
	return p, ok
}
