package shell

import _ "embed"

// Embedded registration templates
// These templates are compiled into the binary at build time

//go:embed templates/registration/nushell.nu
var nushellTemplate string
