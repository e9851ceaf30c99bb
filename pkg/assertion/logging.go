package assertion

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("kgassert/assertion", "assertion evaluation")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
