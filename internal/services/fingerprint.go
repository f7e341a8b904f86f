package services

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
)

// FingerprintComponents sont les traits d'appareil collectés côté client
// (la signature canvas ne peut pas être dérivée côté serveur). L'empreinte
// n'est pas cryptographiquement forte: des collisions entre appareils sont
// possibles et assumées.
type FingerprintComponents struct {
	Screen   string `json:"screen"`
	Timezone string `json:"timezone"`
	Language string `json:"language"`
	Platform string `json:"platform"`
	Canvas   string `json:"canvas"`
}

// FingerprintFromComponents dérive une empreinte stable: même jeu de
// traits, même empreinte.
func FingerprintFromComponents(c FingerprintComponents) string {
	payload, _ := json.Marshal(c)
	sum := sha256.Sum256(payload)
	return base64.RawURLEncoding.EncodeToString(sum[:])
}
