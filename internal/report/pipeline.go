package report

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/svsticky/alvreport/internal/database"
	"github.com/svsticky/alvreport/internal/models"
	"github.com/svsticky/alvreport/internal/ui"
)

// Section titles, in print order. The labels and Dutch titles are fixed: the
// assembly slides reference the metrics by these names.
const (
	titleA2  = "A2 - Verdeling studies"
	titleA3  = "A3 - Nieuwe leden"
	titleA4  = "A4 - Nieuwe bachelor"
	titleA5  = "A5 - Nieuew master"
	titleA6  = "A6 - Verdeling studies nieuwe leden"
	titleA7  = "A7 - Nieuwe actieve leden"
	titleA8  = "A8 - Nieuwe leden sinds 2010"
	titleA11 = "A11 - Verdeling nieuwe actieve leden"
	titleA12 = "A12 - Sjaars bij activiteiten"
	titleA13 = "A13 - Leden bij Extern activiteiten"
)

var sectionOrder = []string{
	titleA2, titleA3, titleA4, titleA5, titleA6,
	titleA7, titleA8, titleA11, titleA12, titleA13,
}

// a11SumNote explains why the A11 total can disagree with A7: members with
// multiple studies appear under every study code.
const a11SumNote = "(Kan anders zijn dan het getal van A7, i.v.m dubbele studies)"

// closingLine wishes the board luck at the general assembly.
const closingLine = "Done. Heel veel success met de ALV ♡"

// Runner executes the report sections in order against the database and
// prints each result as soon as it is fetched. A query failure aborts the
// remainder; sections already printed stay printed.
type Runner struct {
	queries *database.Queries
	ui      *ui.UI

	studyYearStart time.Time
	cutoff         time.Time
}

// NewRunner creates a report runner for the given date range. studyYearStart
// scopes "new member" metrics; cutoff is the day after the last qualifying
// activity and only feeds the activity metric (A12).
func NewRunner(queries *database.Queries, u *ui.UI, studyYearStart, cutoff time.Time) *Runner {
	return &Runner{
		queries:        queries,
		ui:             u,
		studyYearStart: studyYearStart,
		cutoff:         cutoff,
	}
}

// Run executes all sections sequentially. Each section is fetched and
// rendered before the next query is issued.
func (r *Runner) Run(ctx context.Context) error {
	a2, err := r.queries.StudyDistribution(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", titleA2, err)
	}
	r.printCodeCounts(titleA2, a2, "")

	a3, err := r.queries.NewMemberCount(ctx, r.studyYearStart)
	if err != nil {
		return fmt.Errorf("%s: %w", titleA3, err)
	}
	r.printCount(titleA3, a3)

	a4, err := r.queries.NewBachelorCount(ctx, r.studyYearStart)
	if err != nil {
		return fmt.Errorf("%s: %w", titleA4, err)
	}
	r.printCount(titleA4, a4)

	a5, err := r.queries.NewMasterCount(ctx, r.studyYearStart)
	if err != nil {
		return fmt.Errorf("%s: %w", titleA5, err)
	}
	r.printCount(titleA5, a5)

	a6, err := r.queries.NewStudyDistribution(ctx, r.studyYearStart)
	if err != nil {
		return fmt.Errorf("%s: %w", titleA6, err)
	}
	r.printCodeCounts(titleA6, a6, "")

	a7, err := r.queries.NewActiveMemberCount(ctx, r.studyYearStart)
	if err != nil {
		return fmt.Errorf("%s: %w", titleA7, err)
	}
	r.printCount(titleA7, a7)

	a8, err := r.queries.JoinYearSeries(ctx, r.studyYearStart)
	if err != nil {
		return fmt.Errorf("%s: %w", titleA8, err)
	}
	r.printJoinYears(titleA8, a8)

	a11, err := r.queries.NewActiveStudyDistribution(ctx, r.studyYearStart)
	if err != nil {
		return fmt.Errorf("%s: %w", titleA11, err)
	}
	r.printCodeCounts(titleA11, a11, a11SumNote)

	a12, err := r.queries.NewMembersAtActivities(ctx, r.studyYearStart, r.cutoff)
	if err != nil {
		return fmt.Errorf("%s: %w", titleA12, err)
	}
	r.printCount(titleA12, a12)

	// A13 is two-step: fetch candidate activities, filter by name
	// client-side, then count participants over the remaining ids. An empty
	// id list still runs the count and yields zero.
	activities, err := r.queries.ActivitiesSince(ctx, r.studyYearStart)
	if err != nil {
		return fmt.Errorf("%s: %w", titleA13, err)
	}
	externIDs := FilterExternActivities(activities)
	log.Debug().
		Int("candidates", len(activities)).
		Int("extern", len(externIDs)).
		Msg("Filtered extern activities")

	a13, err := r.queries.ParticipantCountForActivities(ctx, externIDs)
	if err != nil {
		return fmt.Errorf("%s: %w", titleA13, err)
	}
	r.printCount(titleA13, a13)

	fmt.Println(closingLine)

	return nil
}

// SumCodeCounts returns the arithmetic total of the count column. An empty
// distribution sums to zero.
func SumCodeCounts(counts []models.StudyCodeCount) int64 {
	var sum int64
	for _, c := range counts {
		sum += c.Count
	}
	return sum
}

func (r *Runner) printCodeCounts(title string, counts []models.StudyCodeCount, note string) {
	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, []string{c.Code, strconv.FormatInt(c.Count, 10)})
	}

	fmt.Println(r.ui.Section(title))
	fmt.Println(r.ui.Table([]string{"code", "count"}, rows))
	fmt.Println(r.ui.SumLine(SumCodeCounts(counts), note))
	fmt.Println()
}

func (r *Runner) printJoinYears(title string, buckets []models.JoinYearCount) {
	rows := make([][]string, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, []string{
			strconv.FormatInt(int64(b.JoinYear), 10),
			strconv.FormatInt(b.Members, 10),
		})
	}

	fmt.Println(r.ui.Section(title))
	fmt.Println(r.ui.Table([]string{"join_year", "members"}, rows))
	fmt.Println()
}

func (r *Runner) printCount(title string, count int64) {
	fmt.Println(r.ui.Section(title))
	fmt.Println(r.ui.Table([]string{"count"}, [][]string{{strconv.FormatInt(count, 10)}}))
	fmt.Println()
}
