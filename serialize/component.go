package serialize

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/soedinglab/csblast/context"
)

const componentTag = "ContextProfile"

// WriteComponent writes one context-library component as a ContextProfile
// record: a PRIOR header, one tab-delimited body row per column (log2
// fixed-point when the component is log-space, probability fixed-point
// otherwise), a PC row for the pseudocount vector, and a "//" terminator.
func WriteComponent(w io.Writer, c *context.Component) error {
	if _, err := fmt.Fprintln(w, componentTag); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "PRIOR\t%v\n", c.Prior); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "LOGSPACE\t%d\n", boolInt(c.LogSpace)); err != nil {
		return err
	}
	for _, row := range c.Profile {
		fields := make([]string, len(row))
		for a, v := range row {
			if c.LogSpace {
				fields[a] = encodeLog2(v)
			} else {
				fields[a] = encodeProb(v)
			}
		}
		if _, err := fmt.Fprintln(w, strings.Join(fields, "\t")); err != nil {
			return err
		}
	}
	pcFields := make([]string, len(c.Pseudocount))
	for a, v := range c.Pseudocount {
		pcFields[a] = encodeProb(v)
	}
	if _, err := fmt.Fprintln(w, "PC\t"+strings.Join(pcFields, "\t")); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "//")
	return err
}

// ReadComponent reads one ContextProfile record of the given window width.
// alphabetSize <= 0 means "infer from the first body row and require every
// subsequent row, and the PC row, to match it" — used when reading from a
// ProfileLibrary record, whose header does not separately declare A.
func ReadComponent(sc *bufio.Scanner, width, alphabetSize int) (*context.Component, error) {
	r := newLineReader(sc)
	if err := r.expectTag(componentTag); err != nil {
		return nil, err
	}
	prior, err := r.headerFloat("PRIOR")
	if err != nil {
		return nil, err
	}
	logSpace, err := r.headerBool("LOGSPACE")
	if err != nil {
		return nil, err
	}

	profile := make([][]float64, width)
	for j := 0; j < width; j++ {
		fields, err := r.row()
		if err != nil {
			return nil, err
		}
		if alphabetSize <= 0 {
			alphabetSize = len(fields)
		}
		if len(fields) != alphabetSize {
			return nil, fmt.Errorf("%w: component column %d has %d fields, want %d",
				ErrShapeMismatch, j, len(fields), alphabetSize)
		}
		row := make([]float64, alphabetSize)
		for a, f := range fields {
			if logSpace {
				row[a], err = decodeLog2(f)
			} else {
				row[a], err = decodeProb(f)
			}
			if err != nil {
				return nil, err
			}
		}
		profile[j] = row
	}

	pcFields, err := r.row()
	if err != nil {
		return nil, err
	}
	if len(pcFields) != alphabetSize+1 || pcFields[0] != "PC" {
		return nil, fmt.Errorf("%w: expected PC row with %d entries", ErrMalformedRecord, alphabetSize)
	}
	pc := make([]float64, alphabetSize)
	for a, f := range pcFields[1:] {
		pc[a], err = decodeProb(f)
		if err != nil {
			return nil, err
		}
	}

	if err := r.terminator(); err != nil {
		return nil, err
	}

	return &context.Component{Profile: profile, Prior: prior, Pseudocount: pc, LogSpace: logSpace}, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
