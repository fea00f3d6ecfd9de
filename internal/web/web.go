// Package web 内嵌的 HTML 模板。
package web

import (
	"embed"
	"html/template"
	"time"
)

//go:embed templates
var files embed.FS

// DateLayout 页面上的日期格式
const DateLayout = "02.01.2006"

// Templates 解析全部模板；mediaURL 把附件相对路径转成可访问的 URL
func Templates(mediaURL func(string) string) (*template.Template, error) {
	funcs := template.FuncMap{
		"media": mediaURL,
		"date": func(t time.Time) string {
			return t.Local().Format(DateLayout)
		},
	}
	return template.New("yatube").Funcs(funcs).ParseFS(files,
		"templates/*.html",
		"templates/*/*.html",
	)
}
