package generator

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("kgassert/generator", "random graph generation")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
