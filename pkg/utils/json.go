package utils

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJson serializa com indentação de dois espaços
func PrettyJson(in any) string {
	out, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		logrus.WithError(err).Warn("Erro ao serializar json")
		return ""
	}

	return string(out)
}
