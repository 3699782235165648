package counter_test

import (
	"bytes"
	"errors"

	"github.com/gbackup/gbackup/counter"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type shortWriter struct {
	limit int
}

func (w shortWriter) Write(b []byte) (int, error) {
	if len(b) > w.limit {
		return w.limit, errors.New("disk full")
	}
	return len(b), nil
}

var _ = Describe("CountWriter", func() {
	It("counts every byte written", func() {
		buffer := new(bytes.Buffer)
		writer := counter.NewCountWriter(buffer)

		n, err := writer.Write([]byte("four"))
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(4))
		Expect(writer.Count()).To(Equal(int64(4)))

		_, err = writer.Write([]byte("four"))
		Expect(err).NotTo(HaveOccurred())
		Expect(writer.Count()).To(Equal(int64(8)))
		Expect(buffer.String()).To(Equal("fourfour"))
	})

	When("the write fails part way", func() {
		It("returns the error and counts only what was written", func() {
			writer := counter.NewCountWriter(shortWriter{limit: 3})

			n, err := writer.Write([]byte("eight..."))
			Expect(err).To(MatchError("disk full"))
			Expect(n).To(Equal(3))
			Expect(writer.Count()).To(Equal(int64(3)))
		})
	})
})
