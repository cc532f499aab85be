// Package csrf emite y valida tokens anti-CSRF con formato
// nonce:timestamp:firma, donde la firma es un HMAC-SHA256 con clave de
// servidor sobre nonce+timestamp. Los tokens expiran a las 24 horas.
package csrf

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MaxAge vigencia máxima de un token emitido.
const MaxAge = 24 * time.Hour

// Signer emite y valida tokens CSRF con una clave fija de servidor.
type Signer struct {
	secret []byte
	now    func() time.Time
}

// New construye el firmador. La clave no puede ser vacía.
func New(secret string) (*Signer, error) {
	if secret == "" {
		return nil, fmt.Errorf("csrf: secret vacío")
	}
	return &Signer{secret: []byte(secret), now: time.Now}, nil
}

// NewWithClock variante con reloj inyectable (tests).
func NewWithClock(secret string, now func() time.Time) (*Signer, error) {
	s, err := New(secret)
	if err != nil {
		return nil, err
	}
	s.now = now
	return s, nil
}

// Issue genera un token nuevo: nonce aleatorio, timestamp de emisión y firma.
func (s *Signer) Issue() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("csrf: generar nonce: %w", err)
	}
	nonce := hex.EncodeToString(buf)
	ts := strconv.FormatInt(s.now().Unix(), 10)
	return nonce + ":" + ts + ":" + s.sign(nonce, ts), nil
}

// Validate verifica forma, firma y vigencia del token. Cualquier desviación
// (partes de más o de menos, firma alterada, timestamp no numérico, token con
// más de 24 horas) falla cerrado.
func (s *Signer) Validate(token string) error {
	parts := strings.Split(token, ":")
	if len(parts) != 3 {
		return fmt.Errorf("csrf: formato inválido")
	}
	nonce, ts, sig := parts[0], parts[1], parts[2]
	if nonce == "" || ts == "" {
		return fmt.Errorf("csrf: formato inválido")
	}
	if !hmac.Equal([]byte(s.sign(nonce, ts)), []byte(sig)) {
		return fmt.Errorf("csrf: firma inválida")
	}
	issued, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return fmt.Errorf("csrf: timestamp inválido")
	}
	if s.now().Sub(time.Unix(issued, 0)) > MaxAge {
		return fmt.Errorf("csrf: token expirado")
	}
	return nil
}

func (s *Signer) sign(nonce, ts string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(nonce + ":" + ts))
	return hex.EncodeToString(mac.Sum(nil))
}
