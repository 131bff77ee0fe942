package sorting

// Heap builds a max-heap bottom-up, then repeatedly moves the root to the end
// of the shrinking heap and restores the heap property.
func Heap(nums []int, rec Recorder) {
	n := len(nums)
	for i := n/2 - 1; i >= 0; i-- {
		heapify(nums, n, i, rec)
	}
	for i := n - 1; i > 0; i-- {
		nums[0], nums[i] = nums[i], nums[0]
		emit(rec, Swap(0, i), nums)
		heapify(nums, i, 0, rec)
	}
	emit(rec, Noop(), nums)
}

// heapify sifts nums[i] down within the first n elements.
func heapify(nums []int, n, i int, rec Recorder) {
	for {
		largest := i
		left, right := 2*i+1, 2*i+2

		if left < n {
			emit(rec, Compare(left, largest), nums)
			if nums[left] > nums[largest] {
				largest = left
			}
		}
		if right < n {
			emit(rec, Compare(right, largest), nums)
			if nums[right] > nums[largest] {
				largest = right
			}
		}

		if largest == i {
			return
		}
		nums[i], nums[largest] = nums[largest], nums[i]
		emit(rec, Swap(i, largest), nums)
		i = largest
	}
}
