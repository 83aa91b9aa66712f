package serialize

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/soedinglab/csblast/alphabet"
	"github.com/soedinglab/csblast/profile"
)

const countProfileTag = "CountProfile"

// WriteCountProfile writes a count/frequency profile as a CountProfile
// record: a header of NCOLS, ALPH, IS_COUNTS, then one tab-delimited body
// row per column holding the column's N_eff followed by its A
// fixed-point-encoded values.
func WriteCountProfile(w io.Writer, p *profile.CountProfile) error {
	if _, err := fmt.Fprintln(w, countProfileTag); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "NCOLS\t%d\n", p.Width()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "ALPH\t%d\n", p.AlphabetSize()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "IS_COUNTS\t%d\n", boolInt(p.IsCounts())); err != nil {
		return err
	}
	for col := 0; col < p.Width(); col++ {
		row := p.Column(col)
		fields := make([]string, len(row)+1)
		fields[0] = strconv.FormatFloat(p.NEff(col), 'g', -1, 64)
		for a, v := range row {
			if p.IsCounts() {
				fields[a+1] = encodeFixed(v)
			} else {
				fields[a+1] = encodeProb(v)
			}
		}
		if _, err := fmt.Fprintln(w, strings.Join(fields, "\t")); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "//")
	return err
}

// ReadCountProfile reads a CountProfile record over the given alphabet.
func ReadCountProfile(r io.Reader, a *alphabet.Alphabet) (*profile.CountProfile, error) {
	sc := bufio.NewScanner(r)
	lr := newLineReader(sc)
	if err := lr.expectTag(countProfileTag); err != nil {
		return nil, err
	}
	width, err := lr.headerInt("NCOLS")
	if err != nil {
		return nil, err
	}
	alphSize, err := lr.headerInt("ALPH")
	if err != nil {
		return nil, err
	}
	if alphSize != a.Len() {
		return nil, fmt.Errorf("%w: record declares alphabet size %d, got %d", ErrShapeMismatch, alphSize, a.Len())
	}
	isCounts, err := lr.headerBool("IS_COUNTS")
	if err != nil {
		return nil, err
	}

	out, err := profile.New(a, width, isCounts)
	if err != nil {
		return nil, err
	}
	for col := 0; col < width; col++ {
		fields, err := lr.row()
		if err != nil {
			return nil, err
		}
		if len(fields) != alphSize+1 {
			return nil, fmt.Errorf("%w: column %d has %d fields, want %d", ErrShapeMismatch, col, len(fields), alphSize+1)
		}
		neff, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, ErrMalformedRecord
		}
		if err := out.SetNEff(col, neff); err != nil {
			return nil, err
		}
		for a, f := range fields[1:] {
			var v float64
			if isCounts {
				v, err = decodeFixed(f)
			} else {
				v, err = decodeProb(f)
			}
			if err != nil {
				return nil, err
			}
			if err := out.Set(col, a, v); err != nil {
				return nil, err
			}
		}
	}
	if err := lr.terminator(); err != nil {
		return nil, err
	}
	return out, nil
}
