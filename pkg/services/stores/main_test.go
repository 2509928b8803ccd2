package stores

import (
	"os"
	"testing"

	"go.uber.org/zap"

	"github.com/cupogo/andvari/utils/zlog"
)

func TestMain(m *testing.M) {
	zlog.Set(zap.NewNop().Sugar())
	os.Exit(m.Run())
}
