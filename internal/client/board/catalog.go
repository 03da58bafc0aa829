package board

// Board элемент каталога досок
type Board struct {
	BbsID       string `yaml:"bbs_id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Встроенные доски CMS
const (
	NoticeBoardID  = "BBSMSTR_AAAAAAAAAAAA"
	FreeBoardID    = "BBSMSTR_BBBBBBBBBBBB"
	GalleryBoardID = "BBSMSTR_CCCCCCCCCCCC"
)

// DefaultCatalog возвращает встроенный каталог досок
func DefaultCatalog() []Board {
	return []Board{
		{BbsID: NoticeBoardID, Name: "Notice", Description: "Announcements from the site operators"},
		{BbsID: FreeBoardID, Name: "Free Board", Description: "Open discussion for members"},
		{BbsID: GalleryBoardID, Name: "Gallery", Description: "Posts with image attachments"},
	}
}

// Lookup ищет доску в каталоге по bbsId
func Lookup(catalog []Board, bbsID string) (Board, bool) {
	for _, b := range catalog {
		if b.BbsID == bbsID {
			return b, true
		}
	}
	return Board{}, false
}
