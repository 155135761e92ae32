package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}

// GenerateWidgetID gera um id de elemento no formato prefix-XXXXXX
func GenerateWidgetID(prefix string) string {
	id, err := GenerateID()
	if err != nil {
		// gonanoid só falha quando o gerador aleatório do sistema falha
		id = "000000"
	}

	return prefix + "-" + id
}
