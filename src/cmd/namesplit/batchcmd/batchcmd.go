package batchcmd

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"namesplit/src/cmd/namesplit/cmdutil"
	"namesplit/src/internal/fields"
	"namesplit/src/internal/names"
	"namesplit/src/internal/schema"
	"namesplit/src/internal/store"
	"namesplit/src/internal/stringsx"
)

// Keys every output record carries besides the mapped name fields.
const (
	KeyID   = "id"
	KeyName = "name"
)

// Options controls a batch run.
type Options struct {
	Mapping   fields.Mapping
	Jobs      int
	Splitter  fields.Splitter
	IndexPath string
}

// New returns the batch command which splits every name in a YAML file and
// writes the parts under the configured field names.
func New() *cobra.Command {
	var (
		jobs        int
		format      string
		index       string
		noHonorific bool
		flagMapping fields.Mapping
	)
	cmd := &cobra.Command{
		Use:   "batch <file|->",
		Short: "Split every name in a YAML people file",
		Long: "Reads people from a YAML file (a list of names or records with name/honorific/first_name/last_name)\n" +
			"and writes one record per person with the split parts under the configured field names.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdutil.LoadConfig(cmd)
			if err != nil {
				return err
			}
			log := cmdutil.Logger(cmd, cfg, "batch")

			m := flagMapping.Inherit(cfg.Fields)
			if noHonorific {
				m.Honorific = ""
			}
			if err := checkMapping(m); err != nil {
				return err
			}
			if err := store.CheckFormat(format); err != nil {
				return err
			}
			people, err := store.ReadPeople(args[0])
			if err != nil {
				return err
			}
			splitter, err := cfg.CachedSplitter()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			records, resolved, err := Run(ctx, people, Options{Mapping: m, Jobs: jobs, Splitter: splitter})
			if err != nil {
				return err
			}
			log.Info("batch split", "file", args[0], "records", len(records), "distinct_names", splitter.Len())
			if strings.TrimSpace(index) != "" {
				path, err := store.WriteIndex(index, store.BuildLastNameIndex(resolved))
				if err != nil {
					return err
				}
				log.Info("wrote last name index", "path", path)
			}
			return store.WritePeople(cmd.OutOrStdout(), records, format)
		},
	}
	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.GOMAXPROCS(0), "Number of names split concurrently")
	cmd.Flags().StringVarP(&format, "format", "f", store.FormatYAML, "Output format: yaml, json")
	cmd.Flags().StringVar(&index, "index", "", "Also write a JSON index of last name -> ids to this path")
	cmd.Flags().BoolVar(&noHonorific, "no-honorific", false, "Do not extract honorifics")
	cmd.Flags().StringVar(&flagMapping.Honorific, "honorific-field", "", "Output field for the honorific (default from config)")
	cmd.Flags().StringVar(&flagMapping.FirstName, "first-field", "", "Output field for the first name (default from config)")
	cmd.Flags().StringVar(&flagMapping.LastName, "last-field", "", "Output field for the last name (default from config)")
	return cmd
}

// Run splits every person concurrently and returns, in input order, the output
// records keyed by opts.Mapping and the people with their parts filled in.
// Records without a name are composed from their parts first.
func Run(ctx context.Context, people schema.People, opts Options) ([]map[string]string, schema.People, error) {
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	binder := fields.NewBinder(opts.Mapping, opts.Splitter)

	records := make([]map[string]string, len(people))
	resolved := make(schema.People, len(people))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, p := range people {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			records[i], resolved[i] = splitOne(binder, p)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return records, resolved, nil
}

func splitOne(b fields.Binder, p schema.Person) (map[string]string, schema.Person) {
	name := names.Normalize(p.Name)
	if name == "" {
		name = fields.FullName(&p)
	}
	rec := fields.NewRecord(b.Mapping.Names()...)
	b.SetFullName(rec, name)

	out := rec.Values()
	out[KeyName] = name
	out[KeyID] = stringsx.FirstNonEmpty(p.ID, schema.Slugify(name))

	resolved := schema.Person{ID: out[KeyID], Name: name}
	if v, ok := rec.Get(b.Mapping.Honorific); ok {
		resolved.Honorific = v
	}
	if v, ok := rec.Get(b.Mapping.FirstName); ok {
		resolved.FirstName = v
	}
	if v, ok := rec.Get(b.Mapping.LastName); ok {
		resolved.LastName = v
	}
	return out, resolved
}

func checkMapping(m fields.Mapping) error {
	seen := map[string]bool{}
	for _, n := range m.Names() {
		if n == KeyID || n == KeyName {
			return fmt.Errorf("field name %q is reserved", n)
		}
		if seen[n] {
			return fmt.Errorf("field name %q is mapped twice", n)
		}
		seen[n] = true
	}
	if strings.TrimSpace(m.FirstName) == "" || strings.TrimSpace(m.LastName) == "" {
		return fmt.Errorf("first and last name fields are required")
	}
	return nil
}
