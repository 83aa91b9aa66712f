package serialize

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/soedinglab/csblast/crf"
)

const (
	crfTag   = "CRF"
	stateTag = "CRFState"
)

// WriteCRF writes a CRF as a CRF record: a header of NSTATES, NCOLS, ALPH,
// followed by one CRFState record per state (INDEX, BIAS, the W x A CWT
// context-weight matrix, and a PC row of pseudocount weights).
func WriteCRF(w io.Writer, c *crf.CRF) error {
	if _, err := fmt.Fprintln(w, crfTag); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "NSTATES\t%d\n", c.NumStates()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "NCOLS\t%d\n", c.Width); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "ALPH\t%d\n", c.AlphabetSize()); err != nil {
		return err
	}
	for k, s := range c.States {
		if err := writeState(w, k, s); err != nil {
			return err
		}
	}
	return nil
}

func writeState(w io.Writer, index int, s *crf.State) error {
	if _, err := fmt.Fprintln(w, stateTag); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "INDEX\t%d\n", index); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "BIAS\t%s\n", encodeFixed(s.Bias)); err != nil {
		return err
	}
	for _, row := range s.ContextWeights {
		fields := make([]string, len(row))
		for a, v := range row {
			fields[a] = encodeFixed(v)
		}
		if _, err := fmt.Fprintln(w, strings.Join(fields, "\t")); err != nil {
			return err
		}
	}
	pcFields := make([]string, len(s.PseudocountWeights))
	for a, v := range s.PseudocountWeights {
		pcFields[a] = encodeFixed(v)
	}
	if _, err := fmt.Fprintln(w, "PC\t"+strings.Join(pcFields, "\t")); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "//")
	return err
}

// ReadCRF reads a CRF record.
func ReadCRF(r io.Reader) (*crf.CRF, error) {
	sc := bufio.NewScanner(r)
	lr := newLineReader(sc)
	if err := lr.expectTag(crfTag); err != nil {
		return nil, err
	}
	nstates, err := lr.headerInt("NSTATES")
	if err != nil {
		return nil, err
	}
	ncols, err := lr.headerInt("NCOLS")
	if err != nil {
		return nil, err
	}
	alph, err := lr.headerInt("ALPH")
	if err != nil {
		return nil, err
	}

	states := make([]*crf.State, nstates)
	for i := 0; i < nstates; i++ {
		index, s, err := readState(sc, ncols, alph)
		if err != nil {
			return nil, fmt.Errorf("state %d: %w", i, err)
		}
		if index != i {
			return nil, fmt.Errorf("%w: state record INDEX %d out of order, expected %d", ErrMalformedRecord, index, i)
		}
		states[i] = s
	}

	return crf.NewCRF(ncols, states)
}

func readState(sc *bufio.Scanner, width, alphabetSize int) (int, *crf.State, error) {
	r := newLineReader(sc)
	if err := r.expectTag(stateTag); err != nil {
		return 0, nil, err
	}
	index, err := r.headerInt("INDEX")
	if err != nil {
		return 0, nil, err
	}
	key, value, err := r.header()
	if err != nil {
		return 0, nil, err
	}
	if key != "BIAS" {
		return 0, nil, ErrMalformedRecord
	}
	bias, err := decodeFixed(value)
	if err != nil {
		return 0, nil, err
	}

	cw := make([][]float64, width)
	for j := 0; j < width; j++ {
		fields, err := r.row()
		if err != nil {
			return 0, nil, err
		}
		if len(fields) != alphabetSize {
			return 0, nil, fmt.Errorf("%w: state context column %d has %d fields, want %d",
				ErrShapeMismatch, j, len(fields), alphabetSize)
		}
		row := make([]float64, alphabetSize)
		for a, f := range fields {
			row[a], err = decodeFixed(f)
			if err != nil {
				return 0, nil, err
			}
		}
		cw[j] = row
	}

	pcFields, err := r.row()
	if err != nil {
		return 0, nil, err
	}
	if len(pcFields) != alphabetSize+1 || pcFields[0] != "PC" {
		return 0, nil, fmt.Errorf("%w: expected PC row with %d entries", ErrMalformedRecord, alphabetSize)
	}
	pc := make([]float64, alphabetSize)
	for a, f := range pcFields[1:] {
		pc[a], err = decodeFixed(f)
		if err != nil {
			return 0, nil, err
		}
	}

	if err := r.terminator(); err != nil {
		return 0, nil, err
	}

	return index, &crf.State{Bias: bias, ContextWeights: cw, PseudocountWeights: pc}, nil
}
