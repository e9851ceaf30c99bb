package dot

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("kgassert/dot", "graph text format")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
