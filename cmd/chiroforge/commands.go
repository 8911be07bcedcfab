package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/mrsinham/chiroforge/cmd/chiroforge/wizard"
	"github.com/mrsinham/chiroforge/internal/exam"
	"github.com/mrsinham/chiroforge/internal/imaging"
	"github.com/mrsinham/chiroforge/internal/narrative"
	"github.com/mrsinham/chiroforge/internal/reconcile"
	"github.com/mrsinham/chiroforge/internal/report"
	"github.com/mrsinham/chiroforge/internal/util"
)

// terminalWidth is the column count used when rendering to stdout.
const terminalWidth = 100

func (a *app) wizardCmd() *cobra.Command {
	var from, examPath string

	cmd := &cobra.Command{
		Use:   "wizard",
		Short: "Fill in an exam interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, closeLog, err := a.fileLogger()
			if err != nil {
				return err
			}
			defer closeLog()

			return wizard.Run(wizard.Options{
				FromTemplate: from,
				ExamPath:     examPath,
				Store:        a.store(log),
				Report:       a.reportSettings(),
				MaxROFGroups: a.cfg.ROF.MaxGroups,
				Log:          log,
			})
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "Prefill answers from a YAML template")
	cmd.Flags().StringVar(&examPath, "exam", "", "Open an existing exam file")
	return cmd
}

func (a *app) newCmd() *cobra.Command {
	var (
		p    exam.Patient
		name string
		sets []string
	)

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create an exam in the patient store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p.DOB = util.NormalizeDate(p.DOB)
			p.DOI = util.NormalizeDate(p.DOI)

			e := exam.New(p, name)
			if err := applySets(e, sets); err != nil {
				return err
			}

			ws := reconcile.FromExam(e, a.workspaceOptions(a.log)...)
			ws.Refresh()

			path, err := a.store(a.log).Save(cmd.Context(), ws.Snapshot())
			if exam.IsIncomplete(err) {
				return fmt.Errorf("%w (use --first, --last, --dob and --doi)", err)
			}
			if err != nil {
				return err
			}
			fmt.Println(path)
			return nil
		},
	}
	cmd.Flags().StringVar(&p.First, "first", "", "Patient first name (required)")
	cmd.Flags().StringVar(&p.Last, "last", "", "Patient last name (required)")
	cmd.Flags().StringVar(&p.DOB, "dob", "", "Date of birth, MM/DD/YYYY (required)")
	cmd.Flags().StringVar(&p.DOI, "doi", "", "Date of injury, MM/DD/YYYY (required)")
	cmd.Flags().StringVar(&p.Sex, "sex", "", "Female or Male")
	cmd.Flags().StringVar(&name, "exam", "Initial", "Exam name")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "Set a field: 'name=value' (repeatable, see 'chiroforge fields')")
	return cmd
}

func (a *app) regenCmd() *cobra.Command {
	var (
		sets []string
		out  string
	)

	cmd := &cobra.Command{
		Use:   "regen <exam.json>",
		Short: "Apply field changes and regenerate the automatic narratives",
		Long: `Loads an exam, applies --set assignments and regenerates every section
whose automatic generation is on. Typed narratives are kept.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := exam.Load(args[0])
			if err != nil {
				return err
			}
			if err := applySets(e, sets); err != nil {
				return err
			}

			ws := reconcile.FromExam(e, a.workspaceOptions(a.log)...)
			ws.Refresh()

			if out == "" {
				out = args[0]
			}
			if err := exam.WriteFile(out, ws.Snapshot()); err != nil {
				return err
			}
			a.log.Info().Str("path", out).Int("changes", len(sets)).Msg("exam regenerated")
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&sets, "set", nil, "Set a field: 'name=value' (repeatable)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write to this file instead of updating in place")
	return cmd
}

func (a *app) importDICOMCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import-dicom <exam.json> <file-or-dir>...",
		Short: "Add imaging studies read from DICOM headers to the review of findings",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			e, err := exam.Load(path)
			if err != nil {
				return err
			}

			entries, headers, err := imaging.NewImporter(a.log).ImportFiles(cmd.Context(), args[1:])
			if err != nil {
				return err
			}
			warnPatientMismatch(a, e.Patient, headers)

			ws := reconcile.FromExam(e, a.workspaceOptions(a.log)...)
			added := 0
			for _, entry := range entries {
				if ws.ROF.Full() {
					a.log.Warn().Int("max", narrative.MaxROFBlocks).Int("skipped", len(entries)-added).Msg("review of findings is full")
					break
				}
				if ws.ROF.Add(entry) {
					added++
				}
			}
			if ws.ROF.Mode() != narrative.ModeROF {
				a.log.Info().Str("mode", string(ws.ROF.Mode())).Msg("studies stored; the paragraph is only generated in ROF mode")
			}

			if err := exam.WriteFile(path, ws.Snapshot()); err != nil {
				return err
			}
			fmt.Printf("Added %d of %d studies from %d files\n", added, len(entries), len(headers))
			return nil
		},
	}
}

// warnPatientMismatch logs headers whose patient name differs from the exam.
func warnPatientMismatch(a *app, p exam.Patient, headers []imaging.Header) {
	for _, h := range headers {
		first, last := h.PatientFirstLast()
		if last == "" {
			continue
		}
		if !strings.EqualFold(last, p.Last) || (first != "" && !strings.EqualFold(first, p.First)) {
			a.log.Warn().
				Str("file", filepath.Base(h.Path)).
				Str("dicom_patient", util.LastFirst(first, last)).
				Str("exam_patient", util.LastFirst(p.First, p.Last)).
				Msg("patient name mismatch")
		}
	}
}

func (a *app) renderCmd() *cobra.Command {
	var (
		pngPath string
		plain   bool
		width   int
	)

	cmd := &cobra.Command{
		Use:   "render <exam.json>",
		Short: "Print the exam report or export it as PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := exam.Load(args[0])
			if err != nil {
				return err
			}
			r := report.Build(e, a.reportSettings())

			if pngPath != "" {
				if width == 0 {
					width = a.cfg.Report.PageWidth
				}
				f, err := os.Create(pngPath)
				if err != nil {
					return fmt.Errorf("create %s: %w", pngPath, err)
				}
				if err := report.WritePNG(f, r, width); err != nil {
					f.Close()
					return err
				}
				if err := f.Close(); err != nil {
					return err
				}
				a.log.Info().Str("path", pngPath).Int("width", width).Msg("report exported")
				return nil
			}

			if plain {
				return report.WriteText(os.Stdout, r)
			}
			fmt.Println(report.RenderTerminal(r, terminalWidth))
			return nil
		},
	}
	cmd.Flags().StringVar(&pngPath, "png", "", "Write a PNG page to this file")
	cmd.Flags().BoolVar(&plain, "plain", false, "Plain text without terminal styling")
	cmd.Flags().IntVar(&width, "width", 0, "PNG width in pixels (default: report.page_width)")
	return cmd
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <patient-folder>",
		Short: "List the exams saved for a patient",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exams, err := a.store(a.log).List(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if len(exams) == 0 {
				fmt.Println("No exams.")
				return nil
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("EXAM", "PATIENT", "UPDATED")
			for _, e := range exams {
				t.Row(e.ExamName,
					util.LastFirst(e.Patient.First, e.Patient.Last),
					e.UpdatedAt.Local().Format("2006-01-02 15:04"))
			}
			fmt.Println(t)
			return nil
		},
	}
}

func fieldsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fields",
		Short: "List the fields accepted by --set",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			t := table.New().
				Border(lipgloss.HiddenBorder()).
				Headers("FIELD", "DESCRIPTION")
			for _, f := range exam.Fields() {
				t.Row(f.Name, f.Help)
			}
			fmt.Println(t)
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("chiroforge %s\n", version)
		},
	}
}

// applySets applies "name=value" assignments in order.
func applySets(e *exam.Exam, sets []string) error {
	var errs []error
	for _, s := range sets {
		name, value, err := exam.ParseAssignment(s)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := exam.SetField(e, name, value); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
