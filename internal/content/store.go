package content

import (
	"context"
	"log"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/soruj/portfolio-assistant/internal/types"
)

// Bundle is the merged, de-duplicated candidate set produced for one request.
type Bundle struct {
	Profile   types.Profile
	Projects  []types.Project
	Skills    []types.SkillCategory
	Documents []types.Document
}

// Store aggregates the three content sources. The static dataset is the
// baseline; the database and the documents directory are best-effort and
// their unavailability never fails a request.
type Store struct {
	db      *DB // nil when no database is configured
	docsDir string
}

// NewStore creates a content store. db may be nil and docsDir may be empty;
// the store degrades to the sources it has.
func NewStore(db *DB, docsDir string) *Store {
	return &Store{db: db, docsDir: docsDir}
}

// Gather produces the candidate set for one request. Database and filesystem
// reads run concurrently; both are collected before returning, since ranking
// needs the full candidate set. A source that fails contributes nothing and
// is logged, not surfaced.
func (s *Store) Gather(ctx context.Context) Bundle {
	bundle := s.baseline()

	var (
		dbProjects []types.Project
		dbSkills   []types.SkillCategory
		dbProfile  *types.Profile
		docs       []types.Document
	)

	g, gctx := errgroup.WithContext(ctx)
	if s.db != nil {
		g.Go(func() error {
			var err error
			if dbProjects, err = s.db.ListProjects(gctx); err != nil {
				log.Printf("[content] database projects unavailable: %v", err)
			}
			return nil
		})
		g.Go(func() error {
			var err error
			if dbSkills, err = s.db.ListSkillCategories(gctx); err != nil {
				log.Printf("[content] database skills unavailable: %v", err)
			}
			return nil
		})
		g.Go(func() error {
			var err error
			if dbProfile, err = s.db.GetProfile(gctx); err != nil {
				log.Printf("[content] database profile unavailable: %v", err)
			}
			return nil
		})
	}
	g.Go(func() error {
		docs = ReadDocsDir(s.docsDir)
		return nil
	})
	_ = g.Wait() // source errors are logged, never propagated

	mergeProjects(&bundle, dbProjects)
	mergeSkills(&bundle, dbSkills)
	if dbProfile != nil && dbProfile.Name != "" {
		bundle.Profile = *dbProfile
	}
	bundle.Documents = append(bundle.Documents, docs...)

	return bundle
}

// baseline copies the static dataset into a fresh Bundle so per-request
// merging never mutates the shared embedded data.
func (s *Store) baseline() Bundle {
	d, err := StaticDataset()
	if err != nil {
		log.Printf("[content] static dataset unavailable: %v", err)
		return Bundle{}
	}
	b := Bundle{
		Profile:   d.Profile,
		Projects:  make([]types.Project, len(d.Projects)),
		Skills:    make([]types.SkillCategory, len(d.Skills)),
		Documents: make([]types.Document, len(d.Documents)),
	}
	copy(b.Projects, d.Projects)
	copy(b.Skills, d.Skills)
	copy(b.Documents, d.Documents)
	return b
}

// mergeProjects appends database projects whose title is not already present.
// Identity is the exact title: duplicate content must not inflate ranking
// scores.
func mergeProjects(b *Bundle, incoming []types.Project) {
	seen := make(map[string]bool, len(b.Projects))
	for _, p := range b.Projects {
		seen[p.Title] = true
	}
	for _, p := range incoming {
		if seen[p.Title] {
			continue
		}
		seen[p.Title] = true
		b.Projects = append(b.Projects, p)
	}
}

// mergeSkills appends database skill categories whose lower-cased title is
// not already present.
func mergeSkills(b *Bundle, incoming []types.SkillCategory) {
	seen := make(map[string]bool, len(b.Skills))
	for _, c := range b.Skills {
		seen[strings.ToLower(c.Title)] = true
	}
	for _, c := range incoming {
		key := strings.ToLower(c.Title)
		if seen[key] {
			continue
		}
		seen[key] = true
		b.Skills = append(b.Skills, c)
	}
}
