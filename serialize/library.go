package serialize

import (
	"bufio"
	"fmt"
	"io"

	"github.com/soedinglab/csblast/context"
)

const libraryTag = "ProfileLibrary"

// WriteLibrary writes a context library as a ProfileLibrary record: a
// header of NUM_PROFILES, NUM_COLS, ITERATIONS, LOGSPACE, followed by one
// ContextProfile record per component. iterations is the EM scan count the
// library was trained for; callers outside a training run may pass 0.
func WriteLibrary(w io.Writer, lib *context.Library, iterations int) error {
	if _, err := fmt.Fprintln(w, libraryTag); err != nil {
		return err
	}
	logSpace := 0
	if len(lib.Components) > 0 && lib.Components[0].LogSpace {
		logSpace = 1
	}
	if _, err := fmt.Fprintf(w, "NUM_PROFILES\t%d\n", lib.NumComponents()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "NUM_COLS\t%d\n", lib.Width); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "ITERATIONS\t%d\n", iterations); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "LOGSPACE\t%d\n", logSpace); err != nil {
		return err
	}
	for _, c := range lib.Components {
		if err := WriteComponent(w, c); err != nil {
			return err
		}
	}
	return nil
}

// ReadLibrary reads a ProfileLibrary record, returning the library and the
// ITERATIONS header value.
func ReadLibrary(r io.Reader) (*context.Library, int, error) {
	sc := bufio.NewScanner(r)
	lr := newLineReader(sc)
	if err := lr.expectTag(libraryTag); err != nil {
		return nil, 0, err
	}
	numProfiles, err := lr.headerInt("NUM_PROFILES")
	if err != nil {
		return nil, 0, err
	}
	numCols, err := lr.headerInt("NUM_COLS")
	if err != nil {
		return nil, 0, err
	}
	iterations, err := lr.headerInt("ITERATIONS")
	if err != nil {
		return nil, 0, err
	}
	if _, err := lr.headerBool("LOGSPACE"); err != nil {
		return nil, 0, err
	}

	components := make([]*context.Component, 0, numProfiles)
	for i := 0; i < numProfiles; i++ {
		c, err := ReadComponent(sc, numCols, -1)
		if err != nil {
			return nil, 0, fmt.Errorf("component %d: %w", i, err)
		}
		components = append(components, c)
	}
	if len(components) != numProfiles {
		return nil, 0, fmt.Errorf("%w: declared %d profiles, read %d", ErrShapeMismatch, numProfiles, len(components))
	}

	lib, err := context.NewLibrary(numCols, components)
	if err != nil {
		return nil, 0, err
	}
	return lib, iterations, nil
}
