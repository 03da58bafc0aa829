package cli

import (
	"strings"
	"text/template"

	pkgapi "github.com/iudanet/egovcms/pkg/api"
)

var templateFuncs = template.FuncMap{
	"datetime": pkgapi.FormatDateTime,
	"date":     pkgapi.FormatDate,
	"orDash": func(s string) string {
		if strings.TrimSpace(s) == "" {
			return "-"
		}
		return s
	},
}

const articleTemplate = `
=== {{.BoardName}} ===

Title:   {{.Article.NttSj}}
No:      {{.Article.NttID}}
Author:  {{.Article.Author}}
Date:    {{datetime .Article.FrstRegisterPnttm}}
Views:   {{.Article.InqireCo}}
{{- if .Article.AtchFileID }}
Files:   {{.Article.AtchFileID}}
{{- end}}

---
{{.Article.NttCn}}
---
`

const profileTemplate = `
=== My Page ===

ID:           {{.Member.MberID}}
Name:         {{.Member.MberNm}}
Email:        {{orDash .Member.MberEmailAdres}}
Gender:       {{orDash .GenderName}}
Phone:        {{orDash .Member.MoblphonNo}}
Zip:          {{orDash .Member.Zip}}
Address:      {{orDash .Member.Adres}} {{.Member.DetailAdres}}
Password hint: {{orDash .PasswordHintName}}
`

var (
	articleTmpl = template.Must(template.New("article").Funcs(templateFuncs).Parse(articleTemplate))
	profileTmpl = template.Must(template.New("profile").Funcs(templateFuncs).Parse(profileTemplate))
)
