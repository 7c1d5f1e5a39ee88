package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/packonce/packonce/internal/checklist"
	"github.com/packonce/packonce/internal/engine"
	"github.com/packonce/packonce/internal/export"
	"github.com/packonce/packonce/internal/model"
	"github.com/packonce/packonce/internal/purchase"
	"github.com/packonce/packonce/internal/seed"
	"github.com/packonce/packonce/internal/store"
)

var (
	dbPath       string
	settingsPath string
)

func main() {
	home, _ := os.UserHomeDir()
	defaultDB := filepath.Join(home, ".config", "packonce", "packonce.db")

	rootCmd := &cobra.Command{
		Use:   "packonce",
		Short: "Local-first packing lists",
	}

	rootCmd.PersistentFlags().StringVar(&dbPath, "db", defaultDB, "database path")
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", model.DefaultSettingsPath(), "settings file path")

	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(showCmd())
	rootCmd.AddCommand(newCmd())
	rootCmd.AddCommand(addCmd())
	rootCmd.AddCommand(toggleCmd())
	rootCmd.AddCommand(editCmd())
	rootCmd.AddCommand(rmCmd())
	rootCmd.AddCommand(rmPackCmd())
	rootCmd.AddCommand(resetCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(templatesCmd())
	rootCmd.AddCommand(tagsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// app bundles the wired-up dependencies a command needs.
type app struct {
	store    *store.SQLiteStore
	engine   *engine.Engine
	settings *model.Settings
	pro      *purchase.Manager
}

func newApp(ctx context.Context) (*app, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	s, err := store.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, err
	}

	settings, err := model.LoadSettings(settingsPath)
	if err != nil {
		s.Close()
		return nil, err
	}

	eng := engine.New(s)
	if settings.HapticsEnabled {
		// Terminal stand-in for haptic feedback on mutations.
		eng.Subscribe(func(engine.Event) { fmt.Fprint(os.Stderr, "\a") })
	}

	if err := seed.SeedIfNeeded(ctx, s, eng); err != nil {
		s.Close()
		return nil, fmt.Errorf("seeding starter data: %w", err)
	}

	return &app{
		store:    s,
		engine:   eng,
		settings: settings,
		pro:      purchase.NewManager(settings.ProActive),
	}, nil
}

func (a *app) close() {
	a.store.Close()
}

// findPack resolves a pack by exact name, then by ID prefix.
func (a *app) findPack(ctx context.Context, ref string) (*model.Pack, error) {
	pack, err := a.store.GetPackByName(ctx, ref)
	if err == nil {
		return pack, nil
	}

	packs, err := a.store.GetPacks(ctx, store.PackFilter{})
	if err != nil {
		return nil, err
	}
	for i := range packs {
		if strings.HasPrefix(packs[i].ID, ref) {
			return &packs[i], nil
		}
	}
	return nil, fmt.Errorf("no pack matching %q", ref)
}

// findItem resolves an item inside a pack by exact name (case-insensitive),
// then by ID prefix.
func findItem(pack *model.Pack, ref string) (*model.PackItem, error) {
	for i := range pack.Items {
		if strings.EqualFold(pack.Items[i].Name, ref) {
			return &pack.Items[i], nil
		}
	}
	for i := range pack.Items {
		if strings.HasPrefix(pack.Items[i].ID, ref) {
			return &pack.Items[i], nil
		}
	}
	return nil, fmt.Errorf("no item matching %q in pack %q", ref, pack.Name)
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all packs",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			packs, err := a.store.GetPacks(ctx, store.PackFilter{SortBy: "created_at"})
			if err != nil {
				return err
			}
			fmt.Print(renderPackList(packs))
			return nil
		},
	}
}

func showCmd() *cobra.Command {
	var filterName string

	cmd := &cobra.Command{
		Use:   "show [pack]",
		Short: "Show a pack's checklist sections",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			pack, err := a.findPack(ctx, args[0])
			if err != nil {
				return err
			}

			filter, err := parseFilter(filterName)
			if err != nil {
				return err
			}

			sections := checklist.Build(pack.Items, checklist.Options{
				Filter:              filter,
				MoveCheckedToBottom: a.settings.MoveCheckedToBottom,
				CollapsePacked:      a.settings.CollapsePacked,
				CombinePinned:       a.settings.CombinePinned,
			})
			fmt.Print(renderSections(pack, sections))
			return nil
		},
	}

	cmd.Flags().StringVar(&filterName, "filter", "all", "item filter: all, topack, packed")
	return cmd
}

func parseFilter(name string) (checklist.Filter, error) {
	switch strings.ToLower(name) {
	case "all":
		return checklist.FilterAll, nil
	case "topack", "to-pack":
		return checklist.FilterToPack, nil
	case "packed":
		return checklist.FilterPacked, nil
	default:
		return checklist.FilterAll, fmt.Errorf("unknown filter %q", name)
	}
}

func newCmd() *cobra.Command {
	var (
		templateTitle string
		tagName       string
		subtitle      string
		pinned        bool
		progressRing  bool
		progressBar   bool
		statusLabel   bool
	)

	cmd := &cobra.Command{
		Use:   "new [name]",
		Short: "Create a pack, optionally from a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			opts := engine.CreateOptions{
				Subtitle:         subtitle,
				Pinned:           pinned,
				ShowProgressRing: progressRing,
				ShowsProgressBar: progressBar,
				ShowsStatusLabel: statusLabel,
			}

			if tagName != "" {
				tag, err := a.store.GetTagByName(ctx, tagName)
				if err != nil {
					return err
				}
				opts.TagID = &tag.ID
			}

			var pack *model.Pack
			if templateTitle != "" {
				tmpl, err := a.store.GetTemplateByTitle(ctx, templateTitle)
				if err != nil {
					return err
				}
				pack, err = a.engine.CreateFromTemplate(ctx, args[0], tmpl.ID, opts)
				if err != nil {
					return err
				}
			} else {
				pack, err = a.engine.CreateAdHoc(ctx, args[0], opts)
				if err != nil {
					return err
				}
			}

			fmt.Printf("Created pack %q with %d items\n", pack.Name, len(pack.Items))
			return nil
		},
	}

	cmd.Flags().StringVar(&templateTitle, "template", "", "template title to start from")
	cmd.Flags().StringVar(&tagName, "tag", "", "tag name")
	cmd.Flags().StringVar(&subtitle, "subtitle", "", "subtitle text")
	cmd.Flags().BoolVar(&pinned, "pinned", false, "pin the pack")
	cmd.Flags().BoolVar(&progressRing, "progress-ring", false, "show a progress ring")
	cmd.Flags().BoolVar(&progressBar, "progress-bar", false, "show a progress bar")
	cmd.Flags().BoolVar(&statusLabel, "status-label", false, "show a status label")
	return cmd
}

func addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add [pack] [item name...]",
		Short: "Add an item to a pack",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			pack, err := a.findPack(ctx, args[0])
			if err != nil {
				return err
			}

			name := strings.Join(args[1:], " ")
			item, err := a.engine.AddItem(ctx, pack.ID, name)
			if err != nil {
				return err
			}
			if item == nil {
				// Blank input is silently ignored.
				return nil
			}
			fmt.Printf("Added %q to %q\n", item.Name, pack.Name)
			return nil
		},
	}
}

func toggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle [pack] [item]",
		Short: "Toggle an item's packed state",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			pack, err := a.findPack(ctx, args[0])
			if err != nil {
				return err
			}
			item, err := findItem(pack, args[1])
			if err != nil {
				return err
			}

			if err := a.engine.ToggleItem(ctx, item.ID); err != nil {
				return err
			}
			state := "packed"
			if item.Packed {
				state = "unpacked"
			}
			fmt.Printf("Marked %q %s\n", item.Name, state)
			return nil
		},
	}
}

func editCmd() *cobra.Command {
	var (
		quantity        int
		category        string
		note            string
		applyToTemplate bool
	)

	cmd := &cobra.Command{
		Use:   "edit [pack] [item]",
		Short: "Edit an item's quantity, category and note",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			pack, err := a.findPack(ctx, args[0])
			if err != nil {
				return err
			}
			item, err := findItem(pack, args[1])
			if err != nil {
				return err
			}

			req := engine.EditRequest{
				Quantity:        item.Quantity,
				Category:        item.Category,
				Note:            item.Note,
				ApplyToTemplate: applyToTemplate,
			}
			if cmd.Flags().Changed("qty") {
				req.Quantity = quantity
			}
			if cmd.Flags().Changed("category") {
				req.Category = category
			}
			if cmd.Flags().Changed("note") {
				req.Note = note
			}

			if err := a.engine.EditItem(ctx, item.ID, req); err != nil {
				return err
			}
			fmt.Printf("Updated %q\n", item.Name)
			return nil
		},
	}

	cmd.Flags().IntVar(&quantity, "qty", 1, "quantity (minimum 1)")
	cmd.Flags().StringVar(&category, "category", "", "category")
	cmd.Flags().StringVar(&note, "note", "", "note text")
	cmd.Flags().BoolVar(&applyToTemplate, "apply-to-template", false,
		"also write the change to the source template item")
	return cmd
}

func rmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm [pack] [item]",
		Short: "Delete an item from a pack",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			pack, err := a.findPack(ctx, args[0])
			if err != nil {
				return err
			}
			item, err := findItem(pack, args[1])
			if err != nil {
				return err
			}

			if err := a.engine.DeleteItem(ctx, item.ID); err != nil {
				return err
			}
			fmt.Printf("Deleted %q from %q\n", item.Name, pack.Name)
			return nil
		},
	}
}

func rmPackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm-pack [pack]",
		Short: "Delete a pack and all its items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			pack, err := a.findPack(ctx, args[0])
			if err != nil {
				return err
			}

			if err := a.engine.DeletePack(ctx, pack.ID); err != nil {
				return err
			}
			fmt.Printf("Deleted pack %q\n", pack.Name)
			return nil
		},
	}
}

func resetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset [pack]",
		Short: "Reset a pack per the uncheck-all-on-reset preference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			pack, err := a.findPack(ctx, args[0])
			if err != nil {
				return err
			}

			if err := a.engine.ResetPack(ctx, pack.ID, a.settings.UncheckAllOnReset); err != nil {
				return err
			}
			if a.settings.UncheckAllOnReset {
				fmt.Printf("Unchecked all items in %q\n", pack.Name)
			} else {
				fmt.Println("uncheck_all_on_reset is off; nothing to do")
			}
			return nil
		},
	}
}

func exportCmd() *cobra.Command {
	var (
		format  string
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "export [pack]",
		Short: "Export a pack as a text or PDF checklist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			pack, err := a.findPack(ctx, args[0])
			if err != nil {
				return err
			}

			if format == "" {
				format = a.settings.ExportFormat
			}

			exporter := export.Exporter{Format: format, ProActive: a.pro.ProActive()}
			result, err := exporter.Export(pack)
			if errors.Is(err, export.ErrProRequired) {
				fmt.Println("PDF export is part of PackOnce Pro. Set pro_active in settings to unlock it.")
				return nil
			}
			if err != nil {
				return err
			}
			if result.FellBack {
				fmt.Fprintln(os.Stderr, "pdf rendering failed, exported text instead")
			}

			if outPath == "" {
				if result.Format == model.ExportFormatPDF {
					outPath = sanitizeFilename(pack.Name) + ".pdf"
				} else {
					fmt.Print(string(result.Data))
					return nil
				}
			}

			if err := os.WriteFile(outPath, result.Data, 0o644); err != nil {
				return fmt.Errorf("writing export to %s: %w", outPath, err)
			}
			fmt.Printf("Exported %q to %s\n", pack.Name, outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "export format: text or pdf (default from settings)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout for text)")
	return cmd
}

func sanitizeFilename(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, " ", "-")
	return name
}

func templatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			templates, err := a.store.GetTemplates(ctx)
			if err != nil {
				return err
			}
			for _, tmpl := range templates {
				items, err := a.store.GetTemplateItems(ctx, tmpl.ID)
				if err != nil {
					return err
				}
				fmt.Printf("%-10s %-10s %d items  %s\n", tmpl.Title, tmpl.Category, len(items), tmpl.Summary)
			}
			return nil
		},
	}
}

func tagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List tags",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			tags, err := a.store.GetTags(ctx)
			if err != nil {
				return err
			}
			for _, tag := range tags {
				fmt.Println(tag.Name)
			}
			return nil
		},
	}
}
