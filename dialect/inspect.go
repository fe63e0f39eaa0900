package dialect

import (
	"regexp"
	"strings"
)

/*
	raw sql inspection.
	regex based on purpose - we classify statements, we do not parse
	them. anything smarter belongs to the database.
*/

var pagingPatterns = []*regexp.Regexp{
	/* mysql / postgres / sqlite */
	regexp.MustCompile(`(?i)\bLIMIT\s+\d+\s*(?:OFFSET\s+\d+)?\b`),
	/* mssql */
	regexp.MustCompile(`(?i)\bTOP\s+\d+\b`),
	regexp.MustCompile(`(?i)\bOFFSET\s+\d+\s+ROWS\b`),
	/* oracle */
	regexp.MustCompile(`(?i)\bROWNUM\s*(?:BETWEEN\s*\d+\s*AND\s*\d+|<=?\s*\d+)`),
}

func HasPaging(query string) bool {
	for _, p := range pagingPatterns {
		if p.MatchString(query) {
			return true
		}
	}
	return false
}

var subquery = regexp.MustCompile(`\([^()]*\)`)
var orderBy = regexp.MustCompile(`(?i)\bORDER\s+BY\b`)

/* reports ORDER BY clauses outside of parenthesised subqueries */
func HasSorting(query string) bool {
	for {
		stripped := subquery.ReplaceAllString(query, "")
		if stripped == query {
			break
		}
		query = stripped
	}
	return orderBy.MatchString(query)
}

var spPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^exec\s`),
	regexp.MustCompile(`^execute\s`),
	regexp.MustCompile(`^call\s`),
	regexp.MustCompile(`^begin\s`),
	regexp.MustCompile(`^declare\s`),
}

func IsStoredProcedure(query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	for _, p := range spPatterns {
		if p.MatchString(query) {
			return true
		}
	}
	return false
}

/* insert / update / delete - statements which return no result set */
func IsDataManipulation(query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	return strings.HasPrefix(query, "insert") ||
		strings.HasPrefix(query, "update") ||
		strings.HasPrefix(query, "delete")
}

var formatArtifacts = []*regexp.Regexp{
	regexp.MustCompile(`\{.*?\}`),
	regexp.MustCompile(`%[sdvw]`),
}

/*
	reports leftover printf/templating artifacts in raw sql, which
	almost always mean the caller interpolated instead of binding
*/
func HasFormatArgs(query string) bool {
	for _, p := range formatArtifacts {
		if p.MatchString(query) {
			return true
		}
	}
	return false
}

var spaceRun = regexp.MustCompile(` +`)

/*
	normalizes whitespace in a query for logging.
	with trimCarriage all whitespace runs collapse to single spaces,
	otherwise only spaces are collapsed and line breaks survive
*/
func TrimString(query string, trimCarriage bool) string {
	if trimCarriage {
		return strings.Join(strings.Fields(query), " ")
	}
	return spaceRun.ReplaceAllString(query, " ")
}
