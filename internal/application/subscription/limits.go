package subscription

// LimitReached decide si un recurso alcanzó el límite del plan.
// Un límite negativo (convención -1) significa ilimitado y nunca se alcanza.
// En cualquier otro caso el límite se alcanza cuando el uso es ≥ al límite.
// Función pura, sin efectos: debe consultarse con el conteo fresco en cada
// escritura sensible a límites, porque el uso cambia entre llamadas.
func LimitReached(limit, usage int) bool {
	if limit < 0 {
		return false
	}
	return usage >= limit
}
