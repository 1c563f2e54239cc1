package igdomain

type BusinessAccountRef struct {
	ID string `json:"id"`
}

// Page é uma página do Facebook, opcionalmente ligada a uma conta comercial do Instagram
type Page struct {
	ID                       string              `json:"id"`
	Name                     string              `json:"name"`
	InstagramBusinessAccount *BusinessAccountRef `json:"instagram_business_account,omitempty"`
}

type PagesResponse struct {
	Data []Page `json:"data"`
}
