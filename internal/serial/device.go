package serial

import "io"

// Device is a device that can be attached to the Controller.
type Device interface {
	Receive(bool)
	Send() bool
}

// nullDevice is an implementation of Device that
// simply returns true on Send and does nothing on
// Receive. This is most commonly used for when no
// device is attached to the Controller.
type nullDevice struct{}

// Receive does nothing.
func (n nullDevice) Receive(bool) {}

// Send always returns true.
func (n nullDevice) Send() bool { return true }

// Writer is a Device that assembles the bits it receives into
// bytes and writes each completed byte to an io.Writer. Test ROMs
// report their results this way. It never sends anything back.
type Writer struct {
	w     io.Writer
	b     uint8
	count uint8
	err   error
}

// NewWriter returns a Writer writing to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Receive shifts bit into the current byte, MSB first.
func (d *Writer) Receive(bit bool) {
	d.b <<= 1
	if bit {
		d.b |= 1
	}
	if d.count++; d.count == 8 {
		if _, err := d.w.Write([]byte{d.b}); err != nil && d.err == nil {
			d.err = err
		}
		d.b, d.count = 0, 0
	}
}

// Send always returns true, as if nothing was plugged in.
func (d *Writer) Send() bool { return true }

// Err returns the first error returned by the underlying writer.
func (d *Writer) Err() error {
	return d.err
}
