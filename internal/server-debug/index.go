package serverdebug

import (
	"html/template"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/zestagio/web-ble/internal/buildinfo"
)

var indexTmpl = template.Must(template.New("index").Parse(`<html>
	<title>Web BLE Debug</title>
<body>
	<h2>Web BLE Debug</h2>
	<p>Version: <code>{{.Version}}</code></p>
	<ul>
		{{range .Pages}}
		<li><a href="{{.Path}}">{{.Path}}</a> {{.Description}}</li>
		{{end}}
	</ul>

	<h2>Log Level</h2>
	<form onSubmit="putLogLevel()">
		<select id="log-level-select">
			{{range .Levels}}
			<option{{ if eq . $.LogLevel }} selected{{ end }}>{{.}}</option>
			{{end}}
		</select>
		<input type="submit" value="Change"></input>
	</form>

	<script>
		function putLogLevel() {
			const req = new XMLHttpRequest();
			req.open('PUT', '/log/level', false);
			req.setRequestHeader('Content-Type', 'application/json');
			req.onload = function() { window.location.reload(); };
			req.send(JSON.stringify({"level": document.getElementById('log-level-select').value}));
		};
	</script>
</body>
</html>
`))

var logLevels = []string{"DEBUG", "INFO", "WARN", "ERROR"}

type page struct {
	Path        string
	Description string
}

type indexPage struct {
	pages []page
}

func newIndexPage() *indexPage {
	return &indexPage{}
}

func (i *indexPage) addPage(path string, description string) {
	i.pages = append(i.pages, page{path, description})
}

func (i *indexPage) handler(eCtx echo.Context) error {
	eCtx.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	eCtx.Response().WriteHeader(http.StatusOK)

	return indexTmpl.Execute(eCtx.Response(), struct {
		Version  string
		Pages    []page
		Levels   []string
		LogLevel string
	}{
		Version:  buildinfo.Version(),
		Pages:    i.pages,
		Levels:   logLevels,
		LogLevel: zap.L().Level().CapitalString(),
	})
}
