package services

import "strings"

// ChatService is the keyword responder behind the "SelvaAI" widget.
// It matches on lowercase substrings; no model involved.
type ChatService struct{}

type ChatLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type ChatResponse struct {
	Message      string     `json:"message"`
	RelatedLinks []ChatLink `json:"relatedLinks,omitempty"`
}

func (ChatService) Reply(userMessage string) ChatResponse {
	msg := strings.ToLower(userMessage)

	contains := func(words ...string) bool {
		for _, w := range words {
			if strings.Contains(msg, w) {
				return true
			}
		}
		return false
	}

	switch {
	case contains("barco", "lancha", "transporte"):
		return ChatResponse{
			Message: "Para viajar por la selva, contamos con rápidas y lanchas de carga. ¿Te gustaría ver los horarios disponibles para Nauta o Requena?",
			RelatedLinks: []ChatLink{
				{Title: "Ver Barcos", URL: "/boats"},
				{Title: "Ver Rutas", URL: "/routes"},
			},
		}
	case contains("comer", "restaurante", "comida"):
		return ChatResponse{
			Message: "¡La gastronomía amazónica es deliciosa! Te recomiendo probar el Juane o el Tacacho con Cecina. Tenemos varios restaurantes aliados.",
			RelatedLinks: []ChatLink{
				{Title: "Ver Restaurantes", URL: "/restaurants"},
			},
		}
	case contains("tour", "turismo", "experiencia"):
		return ChatResponse{
			Message: "Tenemos experiencias increíbles: desde visitas a comunidades nativas hasta expediciones nocturnas. ¿Qué tipo de aventura buscas?",
			RelatedLinks: []ChatLink{
				{Title: "Ver Experiencias", URL: "/experiences"},
			},
		}
	default:
		return ChatResponse{
			Message: "Soy SelvaAI, tu asistente virtual. Puedo ayudarte con información sobre barcos, rutas, restaurantes y turismo en la selva. ¿En qué te puedo ayudar hoy?",
		}
	}
}
