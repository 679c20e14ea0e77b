package script

import (
	"reflect"
	"testing"
)

func TestContainerKindIsValid(t *testing.T) {
	kinds := []ContainerKind{
		ContainerSpoken,
		ContainerStageDir,
		ContainerSfx,
		ContainerListenerDialogue,
		ContainerPlainText,
	}
	for _, kind := range kinds {
		if !kind.IsValid() {
			t.Errorf("%s.IsValid() = false, want true", kind)
		}
	}
	if ContainerKind("CHORUS").IsValid() {
		t.Error(`ContainerKind("CHORUS").IsValid() = true, want false`)
	}
}

func TestContainerPushPreservesOrder(t *testing.T) {
	container := NewContainer(ContainerSpoken).
		Push(NewNormal("some text")).
		Push(NewInline("a cue")).
		Push(NewNormal("more text"))

	if container.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", container.Len())
	}

	want := []Span{
		NewNormal("some text"),
		NewInline("a cue"),
		NewNormal("more text"),
	}
	if !reflect.DeepEqual(container.Spans, want) {
		t.Errorf("Spans = %v, want %v", container.Spans, want)
	}
}

func TestContainerPlainText(t *testing.T) {
	container := NewContainer(ContainerSpoken).
		Push(NewNormal("some text")).
		Push(NewInline("a cue")).
		Push(NewNormal("more text"))

	want := "some text a cue more text"
	if got := container.PlainText(); got != want {
		t.Errorf("PlainText() = %q, want %q", got, want)
	}
}

func TestContainerWordCount(t *testing.T) {
	tests := []struct {
		name      string
		container *Container
		want      WordCount
	}{
		{
			name: "spoken container splits by span kind",
			container: NewContainer(ContainerSpoken).
				Push(NewInline("quietly, slowly")).
				Push(NewNormal("hello there friend")),
			want: WordCount{Spoken: 3, Unspoken: 2},
		},
		{
			name: "stage direction is entirely unspoken",
			container: NewContainer(ContainerStageDir).
				Push(NewNormal("the door creaks open")),
			want: WordCount{Unspoken: 4},
		},
		{
			name: "emphasis in spoken counts as spoken",
			container: NewContainer(ContainerSpoken).
				Push(NewEmphasis("really")),
			want: WordCount{Spoken: 1},
		},
		{
			name:      "empty container",
			container: NewContainer(ContainerSpoken),
			want:      Zero(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.container.WordCount(); got != tt.want {
				t.Errorf("WordCount() = %v, want %v", got, tt.want)
			}
		})
	}
}
