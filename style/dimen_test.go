package style_test

import (
	"testing"

	"github.com/npillmayer/stycache/style"
	"github.com/npillmayer/tyse/core/dimen"
)

func TestDimenOptionKeywords(t *testing.T) {
	if d := style.DimenOption("auto"); !d.IsAuto() {
		t.Errorf("expected 'auto' to convert to the auto variant, is %#v", d)
	}
	if d := style.DimenOption("inherit"); !d.IsInherit() {
		t.Errorf("expected 'inherit' to convert to the inherit variant, is %#v", d)
	}
	if d := style.DimenOption("initial"); !d.IsInitial() {
		t.Errorf("expected 'initial' to convert to the initial variant, is %#v", d)
	}
}

func TestDimenOptionAbsolute(t *testing.T) {
	ten := style.DimenOption("10pt")
	du, ok := ten.Just()
	if !ok {
		t.Fatalf("expected 10pt to be a fixed value, isn't: %#v", ten)
	}
	if du != dimen.PT*10 {
		t.Errorf("expected du to be 10pt, is %s", du)
	}
}

func TestDimenOptionPercentage(t *testing.T) {
	pcnt := style.DimenOption("80%")
	p, ok := pcnt.Percent()
	if !ok {
		t.Fatalf("expected 80%% to be a percentage value, isn't: %#v", pcnt)
	}
	t.Logf("percent = %s", p)
}

func TestDimenOptionGarbage(t *testing.T) {
	if d := style.DimenOption("12em"); !d.IsNone() {
		t.Errorf("expected relative units to convert to the none variant, is %#v", d)
	}
}
