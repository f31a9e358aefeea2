// Package main provides the kin CLI.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"kin/internal/analyze"
	"kin/internal/config"
	"kin/internal/engine"
	"kin/internal/graph"
	"kin/internal/logging"
	"kin/internal/traverse"
	"kin/internal/vault"
)

// Version is the current kin CLI version
var Version = "0.3.1"

var (
	flagVault  string
	flagConfig string
	flagDebug  bool

	flagGenerations int
	flagSpouses     bool
	flagStep        bool
	flagAdoptive    bool
	flagCollection  string
	flagPlace       string
)

var rootCmd = &cobra.Command{
	Use:     "kin",
	Short:   "Kin - relationship graph engine for markdown vaults",
	Long:    `Kin scans a vault of frontmatter-bearing markdown records, builds a reconciled kinship graph, and answers traversal and analysis queries over it.`,
	Version: Version,
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate statistics for the vault graph",
	RunE:  runStats,
}

var treeCmd = &cobra.Command{
	Use:   "tree <person-id>",
	Short: "Walk the tree around a person",
	Long: `Walk the graph from a person and print the people and relationship
edges found.

Examples:
  kin tree sarah-chen-1970
  kin tree sarah-chen-1970 --mode descendants --generations 3
  kin tree sarah-chen-1970 --mode full --collection ming-dynasty`,
	Args: cobra.ExactArgs(1),
	RunE: runTree,
}

var componentsCmd = &cobra.Command{
	Use:   "components",
	Short: "List connected components",
	RunE:  runComponents,
}

var collectionsCmd = &cobra.Command{
	Use:   "collections",
	Short: "List explicit collections",
	RunE:  runCollections,
}

var bridgesCmd = &cobra.Command{
	Use:   "bridges",
	Short: "List cross-collection connections",
	RunE:  runBridges,
}

var flagMode string

func main() {
	rootCmd.PersistentFlags().StringVar(&flagVault, "vault", "", "vault directory (default $KIN_VAULT or .)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default $KIN_CONFIG or kin.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")

	treeCmd.Flags().StringVar(&flagMode, "mode", "ancestors", "traversal mode: ancestors, descendants, or full")
	treeCmd.Flags().IntVar(&flagGenerations, "generations", 0, "generation cap, 0 for unbounded")
	treeCmd.Flags().BoolVar(&flagSpouses, "spouses", true, "include spouses")
	treeCmd.Flags().BoolVar(&flagStep, "step", false, "include step-parents, foster parents, and guardians")
	treeCmd.Flags().BoolVar(&flagAdoptive, "adoptive", true, "include adoptive relationships")
	treeCmd.Flags().StringVar(&flagCollection, "collection", "", "restrict the walk to one collection")
	treeCmd.Flags().StringVar(&flagPlace, "place", "", "restrict the walk to people associated with a place")

	rootCmd.AddCommand(statsCmd, treeCmd, componentsCmd, collectionsCmd, bridgesCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup resolves flags and environment into an engine with a freshly
// built snapshot.
func setup() (*engine.Engine, *graph.Graph, func(), error) {
	env := config.FromEnv()

	vaultDir := flagVault
	if vaultDir == "" {
		vaultDir = env.VaultDir
	}
	configFile := flagConfig
	if configFile == "" {
		configFile = env.ConfigFile
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, nil, err
	}

	log := logging.NewConsole(flagDebug || env.Debug)

	store, err := vault.Open(vaultDir, cfg.Vault, log)
	if err != nil {
		return nil, nil, nil, err
	}

	eng := engine.New(store, store, cfg, log)
	g, err := eng.Rebuild()
	if err != nil {
		store.Close()
		return nil, nil, nil, err
	}
	return eng, g, func() { store.Close() }, nil
}

func runStats(cmd *cobra.Command, args []string) error {
	_, g, done, err := setup()
	if err != nil {
		return err
	}
	defer done()

	components := analyze.Components(g)
	collections := analyze.Collections(g)
	connections := analyze.CrossCollectionConnections(g)
	r := analyze.Analytics(g, components, collections, connections, 5)

	fmt.Printf("People:            %d\n", r.TotalPeople)
	fmt.Printf("With birth date:   %d (%.1f%%)\n", r.WithBirthDate, r.BirthDatePct)
	fmt.Printf("With death date:   %d (%.1f%%)\n", r.WithDeathDate, r.DeathDatePct)
	fmt.Printf("With sex recorded: %d (%.1f%%)\n", r.WithSex, r.SexPct)
	fmt.Printf("With parents:      %d\n", r.WithParents)
	fmt.Printf("With spouses:      %d\n", r.WithSpouses)
	fmt.Printf("With children:     %d\n", r.WithChildren)
	fmt.Printf("Orphaned:          %d\n", r.OrphanedPeople)
	if r.YearSpan > 0 {
		fmt.Printf("Year span:         %d-%d (%d years)\n", r.EarliestYear, r.LatestYear, r.YearSpan)
	}
	fmt.Printf("Components:        %d\n", len(components))
	fmt.Printf("Collections:       %d\n", len(collections))
	if len(r.TopConnections) > 0 {
		fmt.Println("Top connections:")
		for _, c := range r.TopConnections {
			fmt.Printf("  %s <-> %s: %d relationships\n", c.Collections[0], c.Collections[1], c.Count)
		}
	}
	return nil
}

func runTree(cmd *cobra.Command, args []string) error {
	eng, g, done, err := setup()
	if err != nil {
		return err
	}
	defer done()

	kind := traverse.Kind(flagMode)
	switch kind {
	case traverse.Ancestors, traverse.Descendants, traverse.Full:
	default:
		return fmt.Errorf("unknown mode %q", flagMode)
	}

	opts := traverse.Options{
		Kind:                   kind,
		MaxGenerations:         flagGenerations,
		IncludeSpouses:         flagSpouses,
		IncludeStepParents:     flagStep,
		IncludeAdoptiveParents: flagAdoptive,
		Collection:             flagCollection,
	}
	if flagPlace != "" {
		opts.Place = &traverse.PlaceFilter{
			Place: flagPlace,
			Birth: true, Death: true, Burial: true, Marriage: true,
		}
	}

	res, err := eng.Traverse(g, args[0], opts)
	if err != nil {
		return err
	}

	fmt.Printf("%d people, %d edges\n\n", len(res.People), len(res.Edges))
	for _, p := range res.People {
		name := p.Name
		if name == "" {
			name = p.ID
		}
		span := lifespan(p)
		if span != "" {
			fmt.Printf("  %s (%s) [%s]\n", name, span, p.ID)
		} else {
			fmt.Printf("  %s [%s]\n", name, p.ID)
		}
	}
	fmt.Println()
	for _, e := range res.Edges {
		if e.Label != "" {
			fmt.Printf("  %s -> %s (%s)\n", e.From, e.To, e.Label)
		} else {
			fmt.Printf("  %s -> %s (%s)\n", e.From, e.To, e.Category)
		}
	}
	return nil
}

func runComponents(cmd *cobra.Command, args []string) error {
	_, g, done, err := setup()
	if err != nil {
		return err
	}
	defer done()

	components := analyze.Components(g)
	sort.Slice(components, func(i, j int) bool {
		if components[i].Size() != components[j].Size() {
			return components[i].Size() > components[j].Size()
		}
		return components[i].Name < components[j].Name
	})
	for _, c := range components {
		rep := ""
		if p, ok := g.Person(c.RepresentativeID); ok && p.Name != "" {
			rep = p.Name
		} else {
			rep = c.RepresentativeID
		}
		fmt.Printf("%s: %d people (representative: %s)\n", c.Name, c.Size(), rep)
	}
	return nil
}

func runCollections(cmd *cobra.Command, args []string) error {
	_, g, done, err := setup()
	if err != nil {
		return err
	}
	defer done()

	for _, c := range analyze.Collections(g) {
		fmt.Printf("%s: %d people\n", c.Name, c.Size())
	}
	return nil
}

func runBridges(cmd *cobra.Command, args []string) error {
	_, g, done, err := setup()
	if err != nil {
		return err
	}
	defer done()

	for _, conn := range analyze.CrossCollectionConnections(g) {
		fmt.Printf("%s <-> %s: %d relationships via %d people\n",
			conn.Collections[0], conn.Collections[1], conn.Count, len(conn.Bridges))
		for _, id := range conn.Bridges {
			fmt.Printf("  %s\n", id)
		}
	}
	return nil
}

func lifespan(p *graph.Person) string {
	born, bok := analyze.YearOf(p.Born)
	died, dok := analyze.YearOf(p.Died)
	switch {
	case bok && dok:
		return fmt.Sprintf("%d-%d", born, died)
	case bok:
		return fmt.Sprintf("b. %d", born)
	case dok:
		return fmt.Sprintf("d. %d", died)
	}
	return ""
}
