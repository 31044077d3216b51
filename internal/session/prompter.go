package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"pet-inventory/internal/domain/pets"
)

// ErrEndOfInput: la entrada se terminó antes de obtener una respuesta válida.
var ErrEndOfInput = errors.New("end of input")

const (
	msgInvalidKind   = "Invalid input. Please enter a valid kind (Dog, Cat, Lizard, Bird)."
	msgInvalidGender = "Invalid input. Please enter 'M' for Male or 'F' for Female."
	msgInvalidYesNo  = "Invalid input. Please enter 'y' for Yes or 'n' for No."
	msgEmptyPrefix   = "Input cannot be empty. "
)

// Prompter hace preguntas línea a línea y repite hasta recibir algo válido.
// No hay límite de reintentos; solo el fin de la entrada corta el ciclo.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(r), out: w}
}

func (p *Prompter) WriteLine(s string) {
	_, _ = fmt.Fprintln(p.out, s)
}

// ReadLine devuelve la línea sin el salto final ("\n" o "\r\n").
// Las líneas no tienen largo máximo. Una última línea sin salto cuenta.
func (p *Prompter) ReadLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read line: %w", err)
	}
	if err != nil && line == "" {
		return "", ErrEndOfInput
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// Ask escribe message y lee una sola línea, sin validar.
func (p *Prompter) Ask(message string) (string, error) {
	p.WriteLine(message)
	return p.ReadLine()
}

func (p *Prompter) Kind() (pets.Kind, error) {
	for {
		line, err := p.Ask("Kind (Dog, Cat, Lizard, Bird):")
		if err != nil {
			return "", err
		}
		if k, ok := pets.ParseKind(line); ok {
			return k, nil
		}
		p.WriteLine(msgInvalidKind)
	}
}

func (p *Prompter) Gender() (pets.Gender, error) {
	for {
		line, err := p.Ask("Gender (M/F):")
		if err != nil {
			return "", err
		}
		if g, ok := pets.ParseGender(line); ok {
			return g, nil
		}
		p.WriteLine(msgInvalidGender)
	}
}

// YesNo acepta solo "y" o "n" (sin distinguir mayúsculas); "yes"/"no" no valen.
func (p *Prompter) YesNo(message string) (bool, error) {
	for {
		line, err := p.Ask(message)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
		p.WriteLine(msgInvalidYesNo)
	}
}

// Text pide un valor no vacío. El mensaje se muestra una vez; en cada
// reintento sale solo la línea de error (que lo repite).
// El valor aceptado se devuelve tal cual, sin trim.
func (p *Prompter) Text(message string) (string, error) {
	line, err := p.Ask(message)
	for err == nil && pets.IsBlank(line) {
		p.WriteLine(msgEmptyPrefix + message)
		line, err = p.ReadLine()
	}
	if err != nil {
		return "", err
	}
	return line, nil
}
