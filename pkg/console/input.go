package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/diillson/expense-manager-go/internal/shared/types"
)

// LineReader lê linhas do stream interativo de entrada.
type LineReader struct {
	r *bufio.Reader
}

// NewLineReader cria um LineReader sobre r.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(r)}
}

// ReadLine blocks until a full line is available and returns it, terminator included.
// A last line without terminator is returned as is; end of input with nothing left
// to read yields types.ErrInputClosed.
func (l *LineReader) ReadLine() (string, error) {
	line, err := l.r.ReadString('\n')
	if err == nil {
		return line, nil
	}
	if errors.Is(err, io.EOF) {
		if line != "" {
			return line, nil
		}
		return "", types.ErrInputClosed
	}
	return "", fmt.Errorf("read input: %w", err)
}
