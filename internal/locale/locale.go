// Package locale holds the static en/fr message catalog used for
// client-facing auth and form messages. French is the default.
package locale

import "strings"

const (
	French  = "fr"
	English = "en"
)

var messages = map[string]map[string]map[string]string{
	English: {
		"auth": {
			"invalidCredentials":  "Invalid email or password.",
			"accountInactive":     "Account is inactive.",
			"refreshTokenInvalid": "Refresh token is invalid or expired.",
			"loggedOut":           "Logged out successfully.",
			"unauthorized":        "Authentication required.",
			"forbidden":           "Insufficient permissions.",
		},
		"forms": {
			"contactReceived": "Your message has been sent successfully. We will get back to you soon.",
			"devisReceived":   "Your quote request has been sent successfully. We will contact you shortly.",
		},
	},
	French: {
		"auth": {
			"invalidCredentials":  "Email ou mot de passe invalide.",
			"accountInactive":     "Le compte est inactif.",
			"refreshTokenInvalid": "Le jeton de rafraîchissement est invalide ou expiré.",
			"loggedOut":           "Déconnexion réussie.",
			"unauthorized":        "Authentification requise.",
			"forbidden":           "Permissions insuffisantes.",
		},
		"forms": {
			"contactReceived": "Votre message a été envoyé avec succès. Nous vous répondrons bientôt.",
			"devisReceived":   "Votre demande de devis a été envoyée avec succès. Nous vous contacterons sous peu.",
		},
	},
}

// Pick normalizes an Accept-Language header value to a supported locale.
// "en-US" becomes "en"; anything unrecognized falls back to French.
func Pick(acceptLanguage string) string {
	normalized := strings.ToLower(strings.TrimSpace(acceptLanguage))
	if idx := strings.IndexAny(normalized, "-_,;"); idx >= 0 {
		normalized = normalized[:idx]
	}
	if normalized == English {
		return English
	}
	return French
}

// T looks up a message by section and key for the given locale.
func T(loc, section, key string) string {
	dict, ok := messages[loc]
	if !ok {
		dict = messages[French]
	}
	if msg, ok := dict[section][key]; ok {
		return msg
	}
	return messages[French][section][key]
}
