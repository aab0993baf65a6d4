// Package textconf binds structured configurations to text templates. A
// configuration names its template file; rendering locates that file on a
// layered search path and executes it with the configuration's fields,
// declared template methods, and caller-supplied parameters in scope.
//
// Most callers embed Base, point it at a template, and call Render:
//
//	type ServerConfig struct {
//	    textconf.Base
//	    Host string `json:"host"`
//	    Port int    `json:"port"`
//	}
//
//	cfg := ServerConfig{
//	    Base: textconf.NewBase("server.conf.tmpl"),
//	    Host: "localhost",
//	    Port: 8080,
//	}
//	out, err := textconf.Render(ctx, cfg)
//
// Bare template names are resolved against the working directory first, then
// against the directory of the source file that constructed the Base, then
// against that directory's ancestors. Template syntax is pongo2's
// Django-style dialect; configurations can install custom filters and
// globals by implementing EnvironmentSetter, adjust themselves before each
// render by implementing Updater, and inject computed values by declaring
// template methods.
package textconf
