package render

import (
	"html/template"
)

var templates = template.Must(template.New("render").Parse(
	`{{define "badge"}}<div class="{{.Classes}}">` +
		`{{if .Gradient}}<div class="absolute inset-0 {{.Color}}"></div>{{end}}` +
		`<div class="{{.IconSize}} text-white drop-shadow-lg">` +
		`{{with .IconPath}}<svg class="w-full h-full" fill="currentColor" viewBox="0 0 24 24"><path d="{{.}}"/></svg>{{end}}` +
		`</div></div>{{end}}` +

		`{{define "progress"}}{{with .}}<div class="mt-4 w-full" data-progress="{{.Percent}}">` +
		`<div class="h-2 w-full bg-gray-200 rounded-full overflow-hidden">` +
		`<div class="h-2 bg-green-500 rounded-full" style="width: {{.Percent}}%"></div></div>` +
		`<p class="mt-1 text-xs text-gray-500 text-center">{{.Percent}}%</p></div>{{end}}{{end}}` +

		`{{define "modal"}}<div class="fixed inset-0 bg-black/50 flex items-center justify-center z-50 p-4" data-medalforge="modal" data-id="{{.Item.ID}}">` +
		`<div class="{{.Opts.ModalBgColor}} {{.Opts.ModalBorderRadius}} p-6 max-w-md w-full relative">` +
		`<button data-close-modal class="absolute top-3 right-3 {{.Opts.ButtonCloseColor}}{{with .Opts.ButtonCloseHoverColor}} hover:{{.}}{{end}} text-2xl">&times;</button>` +
		`<div class="flex flex-col items-center">{{template "badge" .Badge}}` +
		`<div class="text-center"><h3 class="text-xl font-bold {{.Opts.TitleTextColor}}">{{.Item.Name}}</h3>` +
		`<p class="mt-2 text-gray-600 {{.Opts.DescriptionTextColor}}">{{.Item.Description}}</p></div>` +
		`{{template "progress" .Progress}}` +
		`<div class="mt-6 flex gap-3 w-full"><button class="flex-1 px-4 py-2 {{.Opts.ButtonBgColor}} {{.Opts.ButtonTextColor}}{{with .Opts.ButtonHoverColor}} hover:{{.}}{{end}} rounded-lg transition">{{.Opts.ShareLabel}}</button></div>` +
		`{{with .Item.VerificationURL}}<a href="{{.}}" class="mt-3 text-sm text-blue-600 hover:underline" target="_blank" rel="noopener noreferrer">Verify authenticity</a>{{end}}` +
		`</div></div></div>{{end}}` +

		`{{define "medal"}}<div class="{{.Wrapper}}" data-medalforge="medal" data-id="{{.Item.ID}}"><div class="flex flex-col items-center">` +
		`{{template "badge" .Badge}}` +
		`{{if .ShowTitle}}<h3 class="text-sm font-medium {{.Opts.TextColor}} text-center">{{.Item.Name}}</h3>{{end}}` +
		`{{if .ShowDescription}}<p class="text-xs {{.Opts.TextColor}} text-center">{{.Item.Description}}</p>{{end}}` +
		`{{template "progress" .Progress}}` +
		`</div></div>{{end}}` +

		`{{define "gallery"}}<div class="fixed inset-0 bg-black bg-opacity-50 flex items-center justify-center p-4 z-50" data-medalforge="gallery">` +
		`<div class="{{.BgColor}} rounded-lg shadow-xl p-6 max-w-4xl w-full max-h-[90vh] overflow-y-auto">` +
		`<div class="flex justify-between items-center mb-6"><h2 class="text-xl font-bold {{.TextColor}}">{{.Title}}</h2>` +
		`<button data-close-modal class="text-gray-500 hover:text-gray-700">&times;</button></div>` +
		`<div class="{{.GridClass}}">{{range .Medals}}{{template "medal" .}}{{end}}</div>` +
		`</div></div>{{end}}` +

		`{{define "container"}}<div class="{{.ContainerClass}}" data-medalforge="container">` +
		`<div class="{{.GridClass}}">{{range .Medals}}{{template "medal" .}}{{end}}</div></div>{{end}}`,
))
