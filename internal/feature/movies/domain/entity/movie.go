// Package entity はmoviesフィーチャーのドメインエンティティを定義します。
package entity

// Movie は映画カタログの1件を表します。
// sample_mflixのmoviesコレクションのうち、一覧・検索で公開するフィールドのみを持ちます。
type Movie struct {
	Title  string   `bson:"title" json:"title"`
	Year   int32    `bson:"year,omitempty" json:"year,omitempty"`
	Plot   string   `bson:"plot,omitempty" json:"plot,omitempty"`
	Genres []string `bson:"genres,omitempty" json:"genres,omitempty"`
	Rated  string   `bson:"rated,omitempty" json:"rated,omitempty"`
	Cast   []string `bson:"cast,omitempty" json:"cast,omitempty"`
}
