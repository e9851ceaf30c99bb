package app

import (
	"fmt"

	"github.com/mandelsoft/logging"
	"github.com/mandelsoft/logging/logrusl"
	"github.com/mandelsoft/logging/logrusr"
)

var REALM = logging.DefineRealm("kgassert/kgcheck", "knowledge graph assertion checker")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)

// configureLogging sets a human readable logrus base logger and enables
// the given level for all kgassert realms.
func configureLogging(level string) error {
	l, err := logging.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q", level)
	}
	lctx := logging.DefaultContext()
	lctx.SetBaseLogger(logrusr.New(logrusl.Human(true).NewLogrus()))
	lctx.AddRule(logging.NewConditionRule(l, logging.NewRealmPrefix("kgassert")))
	return nil
}
