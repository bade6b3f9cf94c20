package skillsheet

import (
	"strconv"
	"strings"
	"time"

	"github.com/chiliososada/skills-extractor/pkg/skillsheet/fields"
	"github.com/chiliososada/skills-extractor/pkg/skillsheet/models"
	"github.com/chiliososada/skills-extractor/pkg/skillsheet/parser"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// seniorYears is the experience from which a missing Japanese level is
// inferred.
const seniorYears = 5

// Extract loads the file at path and extracts its résumé record.
func Extract(path string, opts Options) (*models.ResumeRecord, error) {
	doc, err := parser.Load(path)
	if err != nil {
		return nil, NewLoadError(path, "load", err)
	}
	return ExtractDocument(doc, opts)
}

// extractors holds one instance of every field extractor.
type extractors struct {
	name        *fields.NameExtractor
	gender      *fields.GenderExtractor
	birthdate   *fields.BirthdateExtractor
	age         *fields.AgeExtractor
	nationality *fields.NationalityExtractor
	arrival     *fields.ArrivalExtractor
	experience  *fields.ExperienceExtractor
	japanese    *fields.JapaneseExtractor
	skills      *fields.SkillsExtractor
	workScope   *fields.WorkScopeExtractor
	roles       *fields.RoleExtractor
}

func newExtractors(env fields.Env) *extractors {
	return &extractors{
		name:        fields.NewNameExtractor(env),
		gender:      fields.NewGenderExtractor(env),
		birthdate:   fields.NewBirthdateExtractor(env),
		age:         fields.NewAgeExtractor(env),
		nationality: fields.NewNationalityExtractor(env),
		arrival:     fields.NewArrivalExtractor(env),
		experience:  fields.NewExperienceExtractor(env),
		japanese:    fields.NewJapaneseExtractor(env),
		skills:      fields.NewSkillsExtractor(env),
		workScope:   fields.NewWorkScopeExtractor(env),
		roles:       fields.NewRoleExtractor(env),
	}
}

// result collects the raw extractor outputs before post-processing.
type result struct {
	name, gender, nationality string
	experience, japanese      string
	age, arrival              string
	birth                     *time.Time
	skills, workScope, roles  []string
}

// ExtractDocument extracts the résumé record from a loaded document.
// Birthdate always resolves before age and arrival year, which use it.
func ExtractDocument(doc *models.Document, opts Options) (*models.ResumeRecord, error) {
	env, err := opts.env()
	if err != nil {
		return nil, NewLoadError(doc.Path, "tokenizer", err)
	}
	x := newExtractors(env)
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	start := time.Now()
	var res result
	if opts.Parallel {
		x.runParallel(doc, &res)
	} else {
		x.runSequential(doc, &res)
	}

	rec := assemble(res, env.Now)
	log.Debug("extracted document",
		zap.String("path", doc.Path),
		zap.Int("sheets", len(doc.Sheets)),
		zap.Strings("fields", rec.Fields()),
		zap.Duration("elapsed", time.Since(start)))
	return rec, nil
}

func (x *extractors) runSequential(doc *models.Document, res *result) {
	res.name, _ = x.name.Extract(doc)
	res.gender, _ = x.gender.Extract(doc)
	x.runBirthdate(doc, res)
	res.age, _ = x.age.Extract(doc, res.birth)
	res.nationality, _ = x.nationality.Extract(doc)
	res.arrival, _ = x.arrival.Extract(doc, res.birth)
	res.experience, _ = x.experience.Extract(doc)
	res.japanese, _ = x.japanese.Extract(doc)
	res.skills = x.skills.Extract(doc)
	res.workScope = x.workScope.Extract(doc)
	res.roles = x.roles.Extract(doc)
}

// runParallel runs every extractor that does not depend on the birthdate
// concurrently, then age and arrival year.
func (x *extractors) runParallel(doc *models.Document, res *result) {
	var first, second errgroup.Group
	g := &first
	g.Go(func() error { res.name, _ = x.name.Extract(doc); return nil })
	g.Go(func() error { res.gender, _ = x.gender.Extract(doc); return nil })
	g.Go(func() error { x.runBirthdate(doc, res); return nil })
	g.Go(func() error { res.nationality, _ = x.nationality.Extract(doc); return nil })
	g.Go(func() error { res.experience, _ = x.experience.Extract(doc); return nil })
	g.Go(func() error { res.japanese, _ = x.japanese.Extract(doc); return nil })
	g.Go(func() error { res.skills = x.skills.Extract(doc); return nil })
	g.Go(func() error { res.workScope = x.workScope.Extract(doc); return nil })
	g.Go(func() error { res.roles = x.roles.Extract(doc); return nil })
	_ = g.Wait()

	g = &second
	g.Go(func() error { res.age, _ = x.age.Extract(doc, res.birth); return nil })
	g.Go(func() error { res.arrival, _ = x.arrival.Extract(doc, res.birth); return nil })
	_ = g.Wait()
}

func (x *extractors) runBirthdate(doc *models.Document, res *result) {
	if b, ok := x.birthdate.Extract(doc); ok {
		res.birth = &b
	}
}

// assemble applies the cross-field rules and builds the record.
func assemble(res result, now time.Time) *models.ResumeRecord {
	rec := &models.ResumeRecord{
		Name:          models.StringPtr(res.name),
		Gender:        models.StringPtr(res.gender),
		Age:           models.StringPtr(res.age),
		Nationality:   models.StringPtr(res.nationality),
		ArrivalYear:   models.StringPtr(res.arrival),
		Experience:    models.StringPtr(res.experience),
		JapaneseLevel: models.StringPtr(res.japanese),
		Skills:        dedupeFold(res.skills),
		WorkScope:     res.workScope,
		Roles:         res.roles,
	}

	if res.birth != nil {
		rec.Birthdate = models.StringPtr(res.birth.Format(models.DateLayout))
		if rec.Age == nil {
			if age, ok := fields.DeriveAge(*res.birth, now); ok {
				rec.Age = models.StringPtr(strconv.Itoa(age))
			}
		}
		if rec.ArrivalYear != nil && *rec.ArrivalYear == strconv.Itoa(res.birth.Year()) {
			rec.ArrivalYear = nil
		}
	}

	if rec.JapaneseLevel == nil && rec.Experience != nil {
		if years, ok := fields.ExperienceYears(*rec.Experience); ok && years >= seniorYears {
			rec.JapaneseLevel = models.StringPtr(fields.InferredLevel)
		}
	}

	rec.Normalize()
	return rec
}

// dedupeFold removes case-insensitive duplicates, keeping the first
// spelling.
func dedupeFold(list []string) []string {
	var out []string
	seen := make(map[string]bool, len(list))
	for _, s := range list {
		k := strings.ToLower(strings.TrimSpace(s))
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, s)
	}
	return out
}
