package auth

// LoginProvider arma la URL de salida hacia el proveedor OAuth.
// El proveedor vuelve a returnTo con "#session_id=..." en el fragmento.
type LoginProvider interface {
	LoginURL(returnTo string) string
}
