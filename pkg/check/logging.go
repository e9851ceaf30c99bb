package check

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("kgassert/check", "concurrent assertion checks")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
