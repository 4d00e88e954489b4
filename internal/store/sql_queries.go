package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-photo-albums/models"
)

// insertChunkSize bounds the number of rows per multi-row INSERT so the
// statement stays under SQLite's bound-variable limit.
const insertChunkSize = 200

const onConflictDoNothing = "ON CONFLICT DO NOTHING"

func buildSelectUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select("user_id", "name", "sex").
		From("users").
		OrderBy("position", "user_id").
		ToSql()
}

func buildSelectAlbumsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select("album_id", "user_id", "title").
		From("albums").
		OrderBy("position", "album_id").
		ToSql()
}

func buildSelectPhotosQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select("photo_id", "album_id", "title", "url").
		From("photos").
		OrderBy("position", "photo_id").
		ToSql()
}

func buildCountRecordsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select("(SELECT COUNT(*) FROM users) + (SELECT COUNT(*) FROM albums) + (SELECT COUNT(*) FROM photos)").
		ToSql()
}

// buildInsertUsersQuery inserts users with their position offset by start.
func buildInsertUsersQuery(b sq.StatementBuilderType, start int, users []models.User) (string, []any, error) {
	q := b.Insert("users").Columns("user_id", "name", "sex", "position")
	for i, u := range users {
		q = q.Values(u.ID, u.Name, string(u.Sex), start+i)
	}
	return q.Suffix(onConflictDoNothing).ToSql()
}

func buildInsertAlbumsQuery(b sq.StatementBuilderType, start int, albums []models.Album) (string, []any, error) {
	q := b.Insert("albums").Columns("album_id", "user_id", "title", "position")
	for i, a := range albums {
		q = q.Values(a.ID, a.UserID, a.Title, start+i)
	}
	return q.Suffix(onConflictDoNothing).ToSql()
}

func buildInsertPhotosQuery(b sq.StatementBuilderType, start int, photos []models.Photo) (string, []any, error) {
	q := b.Insert("photos").Columns("photo_id", "album_id", "title", "url", "position")
	for i, p := range photos {
		q = q.Values(p.ID, p.AlbumID, p.Title, p.URL, start+i)
	}
	return q.Suffix(onConflictDoNothing).ToSql()
}

// chunks splits n rows into [start, end) windows of at most insertChunkSize.
func chunks(n int) [][2]int {
	out := make([][2]int, 0, n/insertChunkSize+1)
	for start := 0; start < n; start += insertChunkSize {
		out = append(out, [2]int{start, min(start+insertChunkSize, n)})
	}
	return out
}
