package cli

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/diillson/expense-manager-go/internal/shared/types"
)

const defaultLogLevel = logrus.WarnLevel

// setupLogger direciona o logrus para w com o nível pedido.
// Um nível desconhecido gera um aviso e cai para o padrão.
func setupLogger(w io.Writer, level string, cons types.ConsoleInterface) {
	logrus.SetOutput(w)

	if level == "" {
		logrus.SetLevel(defaultLogLevel)
		return
	}

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		cons.LogWarning("Unknown log level %q, using %q", level, defaultLogLevel.String())
		parsed = defaultLogLevel
	}
	logrus.SetLevel(parsed)
}
