package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"github.com/brequin/brequin/prereq/catalog"
	"github.com/brequin/brequin/prereq/requisite"
)

var (
	tablePath  string
	courseName string
)

var rootCmd = &cobra.Command{
	Use:   "prereqs",
	Short: "Compile course prerequisite expressions into requirement trees",
	Long: `prereqs compiles prerequisite expressions such as
"(CE 3311 or EE 3311) and RHET 1302 with GRADE_C" into JSON requirement trees.

Courses are resolved against the catalog data file given with --table, or
against the courses table of the database in DATABASE_CONNECTION_STRING.`,
	SilenceUsage: true,
}

var exprCmd = &cobra.Command{
	Use:   "expr <expression>",
	Short: "Compile a single expression",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, table, err := LoadCatalog(cmd.Context(), tablePath)
		if err != nil {
			return err
		}

		requirement := requisite.Compile(args[0], table)
		logFailure(args[0], requirement)
		return printJSON(requirement)
	},
}

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "Compile the requisites of every catalog course",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, table, err := LoadCatalog(cmd.Context(), tablePath)
		if err != nil {
			return err
		}

		if courseName != "" {
			entries = filterEntries(entries, courseName)
			if len(entries) == 0 {
				return fmt.Errorf("course name not found: %v", courseName)
			}
		}

		return printJSON(CompileCourses(entries, table))
	},
}

var pageCmd = &cobra.Command{
	Use:   "page <file.html>...",
	Short: "Compile the requisites found on saved catalog course pages",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, table, err := LoadCatalog(cmd.Context(), tablePath)
		if err != nil {
			return err
		}

		results := make(map[string][]catalog.CompiledRequisite)
		for _, path := range args {
			page, err := readCoursePage(path)
			if err != nil {
				return fmt.Errorf("%v: %w", path, err)
			}

			code := page.Code
			if code == "" {
				code = path
			}
			results[code] = compileLogged(code, page.Requisites(), table)
		}

		return printJSON(results)
	},
}

func readCoursePage(path string) (catalog.CoursePage, error) {
	file, err := os.Open(path)
	if err != nil {
		return catalog.CoursePage{}, err
	}
	defer file.Close()

	return catalog.ParseCoursePage(file)
}

func filterEntries(entries []catalog.CourseEntry, code string) []catalog.CourseEntry {
	for _, entry := range entries {
		if entry.Code == code {
			return []catalog.CourseEntry{entry}
		}
	}
	return nil
}

// CompileCourses compiles the requisites of every entry concurrently. The
// table is shared read-only between the workers.
func CompileCourses(entries []catalog.CourseEntry, table requisite.CourseTable) map[string][]catalog.CompiledRequisite {
	results := make(map[string][]catalog.CompiledRequisite, len(entries))
	var resultsMutex sync.Mutex

	var wg sync.WaitGroup
	for _, entry := range entries {
		wg.Add(1)

		go func(e catalog.CourseEntry) {
			defer wg.Done()

			compiled := compileLogged(e.Code, e.Requisites(), table)

			resultsMutex.Lock()
			results[e.Code] = compiled
			resultsMutex.Unlock()
		}(entry)
	}
	wg.Wait()

	return results
}

func compileLogged(code string, requisites []catalog.Requisite, table requisite.CourseTable) []catalog.CompiledRequisite {
	compiled := catalog.CompileRequisites(requisites, table)
	for i, c := range compiled {
		logFailure(code+" "+string(c.Kind)+": "+requisites[i].Text, c.Requirement)
	}
	return compiled
}

func logFailure(source string, requirement requisite.Requirement) {
	if failure, ok := requirement.(requisite.ParseFailure); ok {
		log.Printf("Unable to parse %q: %v", source, failure.Cause)
	}
}

func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&tablePath, "table", "", "course data file (default: courses table of DATABASE_CONNECTION_STRING)")
	coursesCmd.Flags().StringVar(&courseName, "name", "", "only compile the course with this code, e.g. \"CS 3345\"")

	rootCmd.AddCommand(exprCmd, coursesCmd, pageCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Fatal(err)
	}
}
