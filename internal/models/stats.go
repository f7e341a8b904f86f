package models

// DashboardStats agrège l'état courant pour le tableau de bord.
type DashboardStats struct {
	TotalClients       int64   `json:"totalClients"`
	TotalCommandes     int64   `json:"totalCommandes"`
	TotalRevenus       float64 `json:"totalRevenus"`
	AlertesCount       int64   `json:"alertesCount"`
	CommandesEnCours   int64   `json:"commandesEnCours"`
	CommandesEnRetard  int64   `json:"commandesEnRetard"`
	PaiementsEnAttente int64   `json:"paiementsEnAttente"`
	CommandesDuMois    int64   `json:"commandesDuMois"`
	RevenusDuMois      float64 `json:"revenusDuMois"`
}

// RapportMensuel résume l'activité d'un mois donné.
type RapportMensuel struct {
	Mois             string  `json:"mois"`
	Annee            int     `json:"annee"`
	TotalCommandes   int64   `json:"totalCommandes"`
	TotalRevenus     float64 `json:"totalRevenus"`
	CommandesLivrees int64   `json:"commandesLivrees"`
	CommandesEnCours int64   `json:"commandesEnCours"`
	NouveauxClients  int64   `json:"nouveauxClients"`
}
