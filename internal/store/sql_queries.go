package store

import (
	"strings"
	"time"

	"github.com/MKhiriev/go-portfolio/models"
	sq "github.com/Masterminds/squirrel"
)

var (
	userColumns = []string{
		"id", "name", "email", "password_hash", "role",
		"description", "footer_description", "title", "location", "location_link",
		"instagram", "linkedin", "github", "about",
		"last_login", "created_at", "updated_at",
	}

	projectColumns = []string{
		"id", "title", "description", "image", "tags", "categories",
		"github", "demo", "featured", "sort_order", "created_at", "updated_at",
	}

	skillColumns = []string{
		"id", "title", "icon", "skills", "sort_order", "created_at", "updated_at",
	}

	timelineColumns = []string{
		"id", "year", "title", "description", "created_at", "updated_at",
	}

	contactColumns = []string{
		"id", "name", "email", "subject", "message", "read", "replied", "created_at", "updated_at",
	}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// likeEscaper neutralises LIKE wildcards in user supplied search terms.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// users

func insertUserQuery(u models.User) (string, []any, error) {
	return psql.Insert(models.User{}.TableName()).
		Columns("id", "name", "email", "password_hash", "role",
			"description", "footer_description", "title", "location", "location_link",
			"instagram", "linkedin", "github", "about").
		Values(u.ID, u.Name, u.Email, u.PasswordHash, string(u.Role),
			u.Description, u.FooterDescription, u.Title, u.Location, u.LocationLink,
			u.Instagram, u.Linkedin, u.Github, u.About).
		Suffix(returning(userColumns)).
		ToSql()
}

func selectUserQuery(where sq.Sqlizer) (string, []any, error) {
	return psql.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		OrderBy("created_at ASC").
		Limit(1).
		ToSql()
}

func updateProfileQuery(id string, update models.OwnerUpdate) (string, []any, error) {
	return psql.Update(models.User{}.TableName()).
		SetMap(update.Columns()).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix(returning(userColumns)).
		ToSql()
}

func updateLastLoginQuery(id string, at time.Time) (string, []any, error) {
	return psql.Update(models.User{}.TableName()).
		Set("last_login", at).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// projects

func insertProjectQuery(p models.Project) (string, []any, error) {
	return psql.Insert(models.Project{}.TableName()).
		Columns("id", "title", "description", "image", "tags", "categories",
			"github", "demo", "featured", "sort_order").
		Values(p.ID, p.Title, p.Description, p.Image, p.Tags, p.Categories,
			p.Github, p.Demo, p.Featured, p.Order).
		Suffix(returning(projectColumns)).
		ToSql()
}

func selectProjectsQuery(filter models.ProjectFilter) (string, []any, error) {
	query := psql.Select(projectColumns...).
		From(models.Project{}.TableName()).
		OrderBy("created_at DESC")

	if filter.Category != "" && filter.Category != models.CategoryAll {
		query = query.Where(sq.Expr("categories @> ?", models.StringList{filter.Category}))
	}

	if filter.FeaturedOnly {
		query = query.Where(sq.Eq{"featured": true})
	}

	if term := strings.TrimSpace(filter.Search); term != "" {
		pattern := containsPattern(term)
		query = query.Where(sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"description": pattern},
			sq.Expr("EXISTS (SELECT 1 FROM jsonb_array_elements_text(tags) t WHERE t ILIKE ?)", pattern),
		})
	}

	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}

	return query.ToSql()
}

func selectProjectQuery(id string) (string, []any, error) {
	return psql.Select(projectColumns...).
		From(models.Project{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func selectCategoriesQuery() (string, []any, error) {
	return psql.Select("jsonb_array_elements_text(categories) AS category").
		Distinct().
		From(models.Project{}.TableName()).
		OrderBy("category").
		ToSql()
}

func updateProjectQuery(p models.Project) (string, []any, error) {
	return psql.Update(models.Project{}.TableName()).
		Set("title", p.Title).
		Set("description", p.Description).
		Set("image", p.Image).
		Set("tags", p.Tags).
		Set("categories", p.Categories).
		Set("github", p.Github).
		Set("demo", p.Demo).
		Set("featured", p.Featured).
		Set("sort_order", p.Order).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": p.ID}).
		Suffix(returning(projectColumns)).
		ToSql()
}

// skills

func insertSkillQuery(s models.Skill) (string, []any, error) {
	return psql.Insert(models.Skill{}.TableName()).
		Columns("id", "title", "icon", "skills", "sort_order").
		Values(s.ID, s.Title, string(s.Icon), s.Skills, s.Order).
		Suffix(returning(skillColumns)).
		ToSql()
}

func selectSkillsQuery() (string, []any, error) {
	return psql.Select(skillColumns...).
		From(models.Skill{}.TableName()).
		OrderBy("created_at DESC").
		ToSql()
}

func selectSkillQuery(id string) (string, []any, error) {
	return psql.Select(skillColumns...).
		From(models.Skill{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func updateSkillQuery(s models.Skill) (string, []any, error) {
	return psql.Update(models.Skill{}.TableName()).
		Set("title", s.Title).
		Set("icon", string(s.Icon)).
		Set("skills", s.Skills).
		Set("sort_order", s.Order).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": s.ID}).
		Suffix(returning(skillColumns)).
		ToSql()
}

// timeline

func insertEventQuery(e models.TimelineEvent) (string, []any, error) {
	return psql.Insert(models.TimelineEvent{}.TableName()).
		Columns("id", "year", "title", "description").
		Values(e.ID, e.Year, e.Title, e.Description).
		Suffix(returning(timelineColumns)).
		ToSql()
}

func selectEventsQuery() (string, []any, error) {
	return psql.Select(timelineColumns...).
		From(models.TimelineEvent{}.TableName()).
		OrderBy("year DESC", "created_at DESC").
		ToSql()
}

func selectEventQuery(id string) (string, []any, error) {
	return psql.Select(timelineColumns...).
		From(models.TimelineEvent{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func updateEventQuery(e models.TimelineEvent) (string, []any, error) {
	return psql.Update(models.TimelineEvent{}.TableName()).
		Set("year", e.Year).
		Set("title", e.Title).
		Set("description", e.Description).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": e.ID}).
		Suffix(returning(timelineColumns)).
		ToSql()
}

// contacts

func insertContactQuery(c models.Contact) (string, []any, error) {
	return psql.Insert(models.Contact{}.TableName()).
		Columns("id", "name", "email", "subject", "message").
		Values(c.ID, c.Name, c.Email, c.Subject, c.Message).
		Suffix(returning(contactColumns)).
		ToSql()
}

func filterContacts(query sq.SelectBuilder, filter models.ContactFilter) sq.SelectBuilder {
	if filter.Read != nil {
		query = query.Where(sq.Eq{"read": *filter.Read})
	}
	return query
}

func countContactsQuery(filter models.ContactFilter) (string, []any, error) {
	query := psql.Select("COUNT(*)").
		From(models.Contact{}.TableName())

	return filterContacts(query, filter).ToSql()
}

func selectContactsQuery(filter models.ContactFilter) (string, []any, error) {
	filter = filter.WithDefaults()
	query := psql.Select(contactColumns...).
		From(models.Contact{}.TableName()).
		OrderBy("created_at DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset()))

	return filterContacts(query, filter).ToSql()
}

func selectContactQuery(id string) (string, []any, error) {
	return psql.Select(contactColumns...).
		From(models.Contact{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func setContactReadQuery(id string, read bool) (string, []any, error) {
	return psql.Update(models.Contact{}.TableName()).
		Set("read", read).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix(returning(contactColumns)).
		ToSql()
}

func deleteByIDQuery(table, id string) (string, []any, error) {
	return psql.Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
}
