package api

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// BoardArticle запись доски объявлений
type BoardArticle struct {
	BbsID             string `json:"bbsId"`
	NttSj             string `json:"nttSj"`
	NttCn             string `json:"nttCn"`
	FrstRegisterID    string `json:"frstRegisterId"`
	FrstRegisterNm    string `json:"frstRegisterNm,omitempty"`
	FrstRegisterPnttm string `json:"frstRegisterPnttm"`
	AtchFileID        string `json:"atchFileId,omitempty"`
	NtcrNm            string `json:"ntcrNm,omitempty"`
	ReplyLc           string `json:"replyLc,omitempty"`
	ReplyAt           string `json:"replyAt,omitempty"`
	NttID             int64  `json:"nttId"`
	NttNo             int64  `json:"nttNo"`
	InqireCo          int64  `json:"inqireCo"`
}

// Author имя автора с запасными вариантами
func (a *BoardArticle) Author() string {
	switch {
	case a.FrstRegisterNm != "":
		return a.FrstRegisterNm
	case a.NtcrNm != "":
		return a.NtcrNm
	default:
		return "-"
	}
}

// ReplyDepth глубина ответа (replyLc), 0 для обычной записи
func (a *BoardArticle) ReplyDepth() int {
	n, err := strconv.Atoi(strings.TrimSpace(a.ReplyLc))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// BoardMaster настройки доски
type BoardMaster struct {
	BbsID               string `json:"bbsId"`
	BbsNm               string `json:"bbsNm"`
	BbsTyCode           string `json:"bbsTyCode"`
	FileAtchPosblAt     string `json:"fileAtchPosblAt"`
	PosblAtchFileNumber int    `json:"posblAtchFileNumber"`
	PosblAtchFileSize   int64  `json:"posblAtchFileSize,omitempty"`
}

// AllowsAttachments сообщает, разрешены ли вложения
func (m *BoardMaster) AllowsAttachments() bool {
	return m != nil && strings.EqualFold(m.FileAtchPosblAt, "Y")
}

// PaginationInfo информация о страницах
type PaginationInfo struct {
	CurrentPageNo         int `json:"currentPageNo"`
	RecordCountPerPage    int `json:"recordCountPerPage"`
	PageSize              int `json:"pageSize"`
	TotalRecordCount      int `json:"totalRecordCount"`
	TotalPageCount        int `json:"totalPageCount"`
	FirstPageNoOnPageList int `json:"firstPageNoOnPageList"`
	LastPageNoOnPageList  int `json:"lastPageNoOnPageList"`
	FirstRecordIndex      int `json:"firstRecordIndex"`
	LastRecordIndex       int `json:"lastRecordIndex"`
}

// BoardListResponse ответ GET /board
type BoardListResponse struct {
	BrdMstrVO      *BoardMaster    `json:"brdMstrVO,omitempty"`
	PaginationInfo *PaginationInfo `json:"paginationInfo,omitempty"`
	ResultList     []BoardArticle  `json:"resultList"`
	ResultCnt      int             `json:"resultCnt"`
}

// BoardDetailResponse ответ GET /board/{bbsId}/{nttId}
type BoardDetailResponse struct {
	Result        *BoardArticle `json:"result,omitempty"`
	BrdMstrVO     *BoardMaster  `json:"brdMstrVO,omitempty"`
	SessionUniqID string        `json:"sessionUniqId,omitempty"`
}

// ListQuery параметры запроса списка
type ListQuery struct {
	BbsID     string
	SearchCnd string
	SearchWrd string
	PageIndex int
}

// Attachment файл для multipart загрузки
type Attachment struct {
	Name string
	Data []byte
}

// ArticleDraft поля создания/изменения записи
type ArticleDraft struct {
	BbsID string
	NttSj string
	NttCn string
	Files []Attachment
}

// ParseBoardDetail разбирает result ответа детального просмотра.
// Backend возвращает либо {result: article, brdMstrVO, sessionUniqId},
// либо саму запись без обертки.
func ParseBoardDetail(raw json.RawMessage) (*BoardDetailResponse, error) {
	var detail BoardDetailResponse
	if len(raw) == 0 || string(raw) == "null" {
		return &detail, nil
	}

	if err := json.Unmarshal(raw, &detail); err != nil {
		return nil, fmt.Errorf("failed to decode board detail: %w", err)
	}
	if detail.Result != nil {
		return &detail, nil
	}

	var article BoardArticle
	if err := json.Unmarshal(raw, &article); err != nil {
		return nil, fmt.Errorf("failed to decode board article: %w", err)
	}
	if article.NttID != 0 || article.NttSj != "" {
		detail.Result = &article
	}
	return &detail, nil
}
