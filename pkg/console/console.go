package console

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
)

// Console é uma implementação do ConsoleInterface.
// O texto do protocolo vai para out; diagnósticos vão para errOut.
type Console struct {
	out     io.Writer
	heading *color.Color

	warningPrinter *pterm.PrefixPrinter
	errorPrinter   *pterm.PrefixPrinter
}

// NewConsole cria um novo Console.
func NewConsole(out, errOut io.Writer, colored bool) *Console {
	heading := color.New(color.FgCyan, color.Bold)
	if colored {
		heading.EnableColor()
		pterm.EnableColor()
	} else {
		heading.DisableColor()
		pterm.DisableColor()
	}

	return &Console{
		out:            out,
		heading:        heading,
		warningPrinter: pterm.Warning.WithWriter(errOut),
		errorPrinter:   pterm.Error.WithWriter(errOut),
	}
}

// Printf imprime uma string formatada no console.
func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Fprintf(c.out, format, a...)
}

// Println imprime no console com uma nova linha.
func (c *Console) Println(a ...interface{}) {
	fmt.Fprintln(c.out, a...)
}

// Heading returns text in bold cyan when colour is enabled.
func (c *Console) Heading(text string) string {
	return c.heading.Sprint(text)
}

// LogWarning registra uma mensagem de aviso.
func (c *Console) LogWarning(format string, a ...interface{}) {
	c.warningPrinter.Printfln(format, a...)
}

// LogError registra uma mensagem de erro.
func (c *Console) LogError(format string, a ...interface{}) {
	c.errorPrinter.Printfln(format, a...)
}
