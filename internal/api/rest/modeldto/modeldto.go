// Package modeldto provides locally used types and their structure for data transfer objects.
package modeldto

type (
	RequestURL struct {
		URL string `json:"url"`
	}

	ResponseURL struct {
		ShortURL string `json:"result"`
	}

	RequestCredentials struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	ResponseUser struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}

	ResponseLink struct {
		ShortURL    string `json:"short_url"`
		OriginalURL string `json:"original_url"`
	}
)
