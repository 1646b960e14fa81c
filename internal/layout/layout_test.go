package layout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name      string
		width     int
		height    int
		listWidth int
		wantList  int
		wantTool  int
		wantMain  int
	}{
		{
			name:      "standard layout",
			width:     100,
			height:    40,
			listWidth: DefaultListWidth,
			wantList:  20,
			wantTool:  80,
			wantMain:  39, // 40 - 1 (status bar)
		},
		{
			name:      "list width below minimum is raised",
			width:     100,
			height:    40,
			listWidth: 4,
			wantList:  MinListWidth,
			wantTool:  88,
			wantMain:  39,
		},
		{
			name:      "list width above maximum is lowered",
			width:     200,
			height:    40,
			listWidth: 90,
			wantList:  MaxListWidth,
			wantTool:  140,
			wantMain:  39,
		},
		{
			name:      "narrow terminal squeezes the list",
			width:     30,
			height:    10,
			listWidth: DefaultListWidth,
			wantList:  10,
			wantTool:  MinToolWidth,
			wantMain:  9,
		},
		{
			name:      "tiny terminal respects minimum height",
			width:     40,
			height:    2,
			listWidth: DefaultListWidth,
			wantList:  20,
			wantTool:  20,
			wantMain:  MinPanelHeight,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Calculate(tt.width, tt.height, tt.listWidth)

			assert.Equal(t, tt.width, l.TotalWidth, "TotalWidth")
			assert.Equal(t, tt.wantList, l.ListWidth, "ListWidth")
			assert.Equal(t, tt.wantTool, l.ToolWidth, "ToolWidth")
			assert.Equal(t, tt.wantMain, l.MainHeight, "MainHeight")
			assert.Equal(t, StatusBarHeight, l.StatusHeight, "StatusHeight")
		})
	}
}

func TestLayoutBounds(t *testing.T) {
	l := Calculate(100, 40, DefaultListWidth)

	t.Run("list bounds", func(t *testing.T) {
		x, y, w, h := l.ListBounds()
		assert.Equal(t, 0, x)
		assert.Equal(t, 0, y)
		assert.Equal(t, 20, w)
		assert.Equal(t, 39, h)
	})

	t.Run("tool bounds", func(t *testing.T) {
		x, y, w, h := l.ToolBounds()
		assert.Equal(t, 20, x)
		assert.Equal(t, 0, y)
		assert.Equal(t, 80, w)
		assert.Equal(t, 39, h)
	})

	t.Run("status bar bounds", func(t *testing.T) {
		x, y, w, h := l.StatusBarBounds()
		assert.Equal(t, 0, x)
		assert.Equal(t, 39, y)
		assert.Equal(t, 100, w)
		assert.Equal(t, 1, h)
	})
}

func TestCalculateNeverExceedsWidth(t *testing.T) {
	for width := 0; width <= 40; width++ {
		l := Calculate(width, 10, DefaultListWidth)
		assert.LessOrEqual(t, l.ListWidth+l.ToolWidth, width, "width %d", width)
		assert.GreaterOrEqual(t, l.ListWidth, 0)
	}

	l := Calculate(15, 10, DefaultListWidth)
	assert.Equal(t, 0, l.ListWidth)
	assert.Equal(t, 15, l.ToolWidth)
}

func TestPack(t *testing.T) {
	t.Run("empty input has no groups", func(t *testing.T) {
		assert.Nil(t, Pack(nil, 10, ", "))
		assert.Nil(t, Pack([]string{}, 10, ", "))
	})

	t.Run("everything fits on one line", func(t *testing.T) {
		got := Pack([]string{"<j> next", "<k> prev"}, 80, ", ")
		assert.Equal(t, [][]string{{"<j> next", "<k> prev"}}, got)
	})

	t.Run("exact fit stays in group", func(t *testing.T) {
		// "aaa, bbb" is 8 cells
		got := Pack([]string{"aaa", "bbb", "c"}, 8, ", ")
		assert.Equal(t, [][]string{{"aaa", "bbb"}, {"c"}}, got)
	})

	t.Run("oversized word sits alone", func(t *testing.T) {
		got := Pack([]string{"a", "toolongword", "b"}, 5, ", ")
		assert.Equal(t, [][]string{{"a"}, {"toolongword"}, {"b"}}, got)
	})

	t.Run("wide runes are measured in cells", func(t *testing.T) {
		// each word is 4 cells wide
		got := Pack([]string{"日本", "日本"}, 8, ", ")
		assert.Equal(t, [][]string{{"日本"}, {"日本"}}, got)
	})
}

func TestPackNeverExceedsWidth(t *testing.T) {
	words := strings.Fields("<j> next field, <k> prev field, <h> prev value, <l> next value, " +
		"<y> copy, <p> paste, <enter> generate, <ctrl+e> scroll down, <ctrl+y> scroll up, " +
		"averyveryveryverylongword x yy zzz")

	for width := 1; width <= 40; width++ {
		groups := Pack(words, width, ", ")

		var flat []string
		for _, g := range groups {
			require.NotEmpty(t, g)
			if len(g) > 1 {
				assert.LessOrEqual(t, GroupWidth(g, ", "), width, "width=%d group=%v", width, g)
			}
			flat = append(flat, g...)
		}
		assert.Equal(t, words, flat, "order preserved at width=%d", width)
	}
}
