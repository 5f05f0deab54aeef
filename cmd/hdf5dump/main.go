// hdf5dump inspects HDF5 files: it walks the group tree and dumps dataset
// contents. Each error kind maps to a distinct exit code so scripts can
// tell "not an HDF5 file" from "unsupported filter" without parsing stderr.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/hdf5ro/hdf5/hdf5"
)

// Exit codes per error kind.
const (
	exitOK          = 0
	exitIO          = 1
	exitNotHDF5     = 2
	exitUnsupported = 3
	exitDatatype    = 4
	exitFilter      = 5
	exitLink        = 6
	exitMalformed   = 7
	exitUsage       = 64
)

// exitCode classifies err into the exit-code table.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, hdf5.ErrNotHDF5):
		return exitNotHDF5
	case errors.Is(err, hdf5.ErrUnsupportedDatatype):
		return exitDatatype
	case errors.Is(err, hdf5.ErrUnsupportedFilter):
		return exitFilter
	case errors.Is(err, hdf5.ErrUnsupportedLink):
		return exitLink
	case errors.Is(err, hdf5.ErrUnsupportedVersion):
		return exitUnsupported
	case errors.Is(err, hdf5.ErrMalformedStructure), errors.Is(err, hdf5.ErrChecksumMismatch):
		return exitMalformed
	default:
		return exitIO
	}
}

func main() {
	argparser := &cobra.Command{
		Use:   "hdf5dump {tree|data} FILE [ARGS...]",
		Short: "Inspect the contents of an HDF5 file",

		SilenceErrors: true, // main() prints the one-line diagnostic itself
		SilenceUsage:  true,

		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	argparser.AddCommand(newTreeCommand())
	argparser.AddCommand(newDataCommand())

	if err := argparser.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "hdf5dump: %v\n", err)
		code := exitCode(err)
		var uerr *usageError
		if errors.As(err, &uerr) {
			code = exitUsage
		}
		os.Exit(code)
	}
}

// usageError marks bad command-line arguments, distinct from decode errors.
type usageError struct{ msg string }

func (e *usageError) Error() string { return e.msg }

// argsExactly validates positional argument count as a usage error.
func argsExactly(n int, what string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return &usageError{msg: fmt.Sprintf("expected %s, got %d arguments", what, len(args))}
		}
		return nil
	}
}

func newTreeCommand() *cobra.Command {
	var showAttrs bool

	cmd := &cobra.Command{
		Use:   "tree FILE",
		Short: "Print the group/dataset tree reachable from the root group",
		Args:  argsExactly(1, "FILE"),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := hdf5.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			fmt.Printf("%s (superblock v%d)\n", args[0], f.Version())

			return hdf5.Walk(f.Root(), func(path string, obj interface{}, err error) error {
				if err != nil {
					fmt.Printf("%-40s !! %v\n", path, err)
					return nil
				}
				switch o := obj.(type) {
				case *hdf5.Group:
					fmt.Printf("%-40s group\n", path)
					if showAttrs {
						printAttrNames(o.Attrs())
					}
				case *hdf5.Dataset:
					fmt.Printf("%-40s dataset shape=%v elemsize=%d\n", path, o.Shape(), o.DtypeSize())
					if showAttrs {
						printAttrNames(o.Attrs())
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&showAttrs, "attrs", false, "also list attribute names per object")
	return cmd
}

// elemLimitFlag is a non-negative element-count limit; 0 means unlimited.
type elemLimitFlag int

func (f *elemLimitFlag) Type() string   { return "count" }
func (f *elemLimitFlag) String() string { return fmt.Sprint(int(*f)) }
func (f *elemLimitFlag) Set(str string) error {
	var n int
	if _, err := fmt.Sscanf(str, "%d", &n); err != nil || n < 0 {
		return fmt.Errorf("invalid count %q", str)
	}
	*f = elemLimitFlag(n)
	return nil
}

var _ pflag.Value = (*elemLimitFlag)(nil)

func newDataCommand() *cobra.Command {
	maxElems := elemLimitFlag(64)

	cmd := &cobra.Command{
		Use:   "data FILE DATASET",
		Short: "Print a dataset's shape and decoded elements",
		Args:  argsExactly(2, "FILE DATASET"),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := hdf5.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			ds, err := f.OpenDataset(args[1])
			if err != nil {
				return err
			}

			elems, dims, err := ds.ReadData()
			if err != nil {
				return err
			}

			fmt.Printf("dims: %v\n", dims)
			printElements(elems, int(maxElems))
			return nil
		},
	}
	cmd.Flags().Var(&maxElems, "max-elems", "print at most this many elements (0 = all)")
	return cmd
}

func printAttrNames(names []string) {
	for _, n := range names {
		fmt.Printf("    @%s\n", n)
	}
}

// printElements prints up to limit elements of any of ReadData's slice types.
func printElements(elems interface{}, limit int) {
	print1 := func(n int, at func(int) interface{}) {
		shown := n
		if limit > 0 && limit < n {
			shown = limit
		}
		for i := 0; i < shown; i++ {
			fmt.Println(at(i))
		}
		if shown < n {
			fmt.Printf("... (%d more)\n", n-shown)
		}
	}

	switch v := elems.(type) {
	case []int8:
		print1(len(v), func(i int) interface{} { return v[i] })
	case []int16:
		print1(len(v), func(i int) interface{} { return v[i] })
	case []int32:
		print1(len(v), func(i int) interface{} { return v[i] })
	case []int64:
		print1(len(v), func(i int) interface{} { return v[i] })
	case []uint8:
		print1(len(v), func(i int) interface{} { return v[i] })
	case []uint16:
		print1(len(v), func(i int) interface{} { return v[i] })
	case []uint32:
		print1(len(v), func(i int) interface{} { return v[i] })
	case []uint64:
		print1(len(v), func(i int) interface{} { return v[i] })
	case []float32:
		print1(len(v), func(i int) interface{} { return v[i] })
	case []float64:
		print1(len(v), func(i int) interface{} { return v[i] })
	default:
		fmt.Printf("%v\n", v)
	}
}
