package cass

import "github.com/gocql/gocql"

type Session struct {
	S *gocql.Session
}

func (s *Session) Exec(stmt string, args ...interface{}) error {
	if args == nil {
		return s.S.Query(stmt).Exec()
	}
	return s.S.Query(stmt, args...).Exec()
}

/* reads all rows of a select into maps, gocql iterator underneath */
func (s *Session) Query(stmt string, args ...interface{}) ([]map[string]interface{}, error) {

	iter := s.S.Query(stmt, args...).Iter()

	var out []map[string]interface{}
	for {
		row := map[string]interface{}{}
		if !iter.MapScan(row) {
			break
		}
		out = append(out, row)
	}

	return out, iter.Close()
}

func (s *Session) Close() {
	s.S.Close()
}
