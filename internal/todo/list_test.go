package todo

import (
	"reflect"
	"testing"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		name string
		list List
		task string
		want List
	}{
		{
			name: "append to empty list",
			list: List{},
			task: "buy milk",
			want: List{"buy milk"},
		},
		{
			name: "append preserves order",
			list: List{"buy milk", "walk dog"},
			task: "write report",
			want: List{"buy milk", "walk dog", "write report"},
		},
		{
			name: "duplicate text is allowed",
			list: List{"buy milk"},
			task: "buy milk",
			want: List{"buy milk", "buy milk"},
		},
		{
			name: "empty task is accepted as-is",
			list: List{"buy milk"},
			task: "",
			want: List{"buy milk", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.list.Add(tt.task)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Add: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name   string
		list   List
		index  int
		want   List
		wantOK bool
	}{
		{
			name:   "first element",
			list:   List{"a", "b", "c"},
			index:  0,
			want:   List{"b", "c"},
			wantOK: true,
		},
		{
			name:   "middle element shifts later ones down",
			list:   List{"a", "b", "c"},
			index:  1,
			want:   List{"a", "c"},
			wantOK: true,
		},
		{
			name:   "last element",
			list:   List{"a", "b", "c"},
			index:  2,
			want:   List{"a", "b"},
			wantOK: true,
		},
		{
			name:   "only element",
			list:   List{"a"},
			index:  0,
			want:   List{},
			wantOK: true,
		},
		{
			name:   "negative index leaves list unchanged",
			list:   List{"a", "b"},
			index:  -1,
			want:   List{"a", "b"},
			wantOK: false,
		},
		{
			name:   "index past the end leaves list unchanged",
			list:   List{"a", "b"},
			index:  2,
			want:   List{"a", "b"},
			wantOK: false,
		},
		{
			name:   "empty list",
			list:   List{},
			index:  0,
			want:   List{},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.list.Delete(tt.index)
			if ok != tt.wantOK {
				t.Errorf("Delete ok: got %v, want %v", ok, tt.wantOK)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Delete list: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDeleteDoesNotMutateOriginal(t *testing.T) {
	list := List{"a", "b", "c"}
	if _, ok := list.Delete(0); !ok {
		t.Fatal("Delete failed")
	}
	if !reflect.DeepEqual(list, List{"a", "b", "c"}) {
		t.Errorf("original list mutated: got %v", list)
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		list List
		want []string
	}{
		{
			name: "empty list renders the no-tasks message",
			list: List{},
			want: []string{EmptyMessage},
		},
		{
			name: "tasks are numbered from 1",
			list: List{"a", "b"},
			want: []string{"1. a", "2. b"},
		},
		{
			name: "more than nine tasks keep counting",
			list: List{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"},
			want: []string{
				"1. a", "2. b", "3. c", "4. d", "5. e",
				"6. f", "7. g", "8. h", "9. i", "10. j",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.list.Render()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Render: got %v, want %v", got, tt.want)
			}
		})
	}
}
