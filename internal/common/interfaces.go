package common

type Observer interface {
	Update(event Event) error
	Name() string
}

type Subject interface {
	Subscribe(observer Observer)
	Unsubscribe(observer Observer)
	Notify(event Event)
	NotifyAsync(event Event)
}
