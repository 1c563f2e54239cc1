package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "0123456789abcdefghijklmnopqrstuvwxyz"

// GenerateID gera um identificador curto, seguro para nomes de arquivo
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 11)
}
