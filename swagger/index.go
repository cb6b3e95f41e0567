package swagger

import "html/template"

const (
	cssIndexPath                    = "/index.css"
	cssSwaggerUiPath                = "/swagger-ui.css"
	jsSwaggerUiBundlePath           = "/swagger-ui-bundle.js"
	jsSwaggerUiStandalonePresetPath = "/swagger-ui-standalone-preset.js"
	faviconPath                     = "/favicon-32x32.png"
)

type indexData struct {
	Title         string
	CssSwaggerUI  string
	CssIndex      string
	Favicon       string
	JsBundle      string
	JsPreset      string
	JsInitializer string
	MountID       string
}

var indexTemplate = template.Must(template.New("index").Parse(`<!-- HTML for static distribution bundle build -->
<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="UTF-8">
    <title>{{.Title}}</title>
    <link rel="stylesheet" type="text/css" href="{{.CssSwaggerUI}}" />
    <link rel="stylesheet" type="text/css" href="{{.CssIndex}}" />
    {{- if .Favicon}}
    <link rel="icon" type="image/png" href="{{.Favicon}}" sizes="32x32" />
    {{- end}}
  </head>

  <body>
    <div id="{{.MountID}}"></div>
    <script src="{{.JsBundle}}" charset="UTF-8"> </script>
    <script src="{{.JsPreset}}" charset="UTF-8"> </script>
    <script src="{{.JsInitializer}}" charset="UTF-8"> </script>
  </body>
</html>
`))

const cssIndex = `html {
  box-sizing: border-box;
  overflow: -moz-scrollbars-vertical;
  overflow-y: scroll;
}

*,
*:before,
*:after {
  box-sizing: inherit;
}

body {
  margin: 0;
  background: #fafafa;
}
`
